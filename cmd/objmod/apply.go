package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/objmod"
	"github.com/signadot/objmod/libdiff"
	"github.com/signadot/objmod/modifier"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires a modifiers file", cli.ErrUsage)
	}
	if cfg.Diff && cfg.Patch {
		return fmt.Errorf("%w: must specify at most one of -diff -patch", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	mods, err := modifier.Load(d)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	docs, err := readDocs(cc, args[1:])
	if err != nil {
		return err
	}
	res := make([]any, len(docs))
	for i, doc := range docs {
		res[i], err = objmod.Preview(doc, mods...)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	switch {
	case cfg.Patch:
		return writePatches(cc.Out, docs, res)
	case cfg.Diff:
		differs := false
		for i := range docs {
			changed, err := writeDiff(cfg.MainConfig, cc.Out, docs[i], res[i])
			if err != nil {
				return err
			}
			differs = differs || changed
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}

func writePatches(w io.Writer, before, after []any) error {
	for i := range before {
		p, err := objmod.MergePatch(before[i], after[i])
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", p); err != nil {
			return err
		}
	}
	return nil
}

// writeDiff writes a line diff of the encodings of from and to, reporting
// whether they differ.
func writeDiff(cfg *MainConfig, w io.Writer, from, to any) (bool, error) {
	a, err := objmod.Encode(from, cfg.asJSON())
	if err != nil {
		return false, err
	}
	b, err := objmod.Encode(to, cfg.asJSON())
	if err != nil {
		return false, err
	}
	lines := libdiff.Lines(string(a), string(b))
	if !libdiff.Changed(lines) {
		return false, nil
	}
	paint := linePainter(cfg.colors(w))
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(paint(line))
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())
	return true, err
}

func linePainter(useColor bool) func(libdiff.Line) string {
	if !useColor {
		return libdiff.Line.String
	}
	ins := color.RGB(8, 196, 16)
	del := color.RGB(196, 32, 32)
	ins.EnableColor()
	del.EnableColor()
	insf, delf := ins.SprintfFunc(), del.SprintfFunc()
	return func(l libdiff.Line) string {
		switch l.Op {
		case libdiff.Insert:
			return insf("%s", l)
		case libdiff.Delete:
			return delf("%s", l)
		}
		return l.String()
	}
}
