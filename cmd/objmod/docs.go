package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/objmod"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("\n---\n")

// readDocs decodes the documents of each path in turn, "-" meaning the
// command input. With no paths the command input is read.
func readDocs(cc *cli.Context, paths []string) ([]any, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var res []any
	for _, path := range paths {
		docs, err := readFile(cc, path)
		if err != nil {
			return nil, err
		}
		res = append(res, docs...)
	}
	return res, nil
}

func readFile(cc *cli.Context, path string) ([]any, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	d = bytes.TrimPrefix(d, []byte("---\n"))
	var res []any
	for i, part := range bytes.Split(d, docSep) {
		if len(bytes.TrimSpace(part)) == 0 {
			continue
		}
		doc, err := objmod.Decode(part)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s document %d: %w", path, i, err)
		}
		res = append(res, doc)
	}
	return res, nil
}

// writeDocs encodes docs to w, separating yaml documents with "---".
func writeDocs(cfg *MainConfig, w io.Writer, docs []any) error {
	for i, doc := range docs {
		if i > 0 && !cfg.asJSON() {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg, w, doc); err != nil {
			return err
		}
	}
	return nil
}

func writeDoc(cfg *MainConfig, w io.Writer, doc any) error {
	d, err := objmod.Encode(doc, cfg.asJSON())
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(d, []byte("\n")) {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
