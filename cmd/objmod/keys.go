package main

import (
	"fmt"
	"strings"

	"github.com/signadot/objmod/match"
	"github.com/signadot/objmod/object"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires a pattern", cli.ErrUsage)
	}
	q, err := match.ParseQuantifier(cfg.Quantifier)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	p, err := patternArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad pattern %q: %w", cli.ErrUsage, args[0], err)
	}
	m := match.New(p, match.WithQuantifier(q))
	docs, err := readDocs(cc, args[1:])
	if err != nil {
		return err
	}
	res := make([]any, len(docs))
	for i, doc := range docs {
		if cfg.Values {
			res[i] = entriesMap(m.EntriesOf(doc))
			continue
		}
		ks := m.KeysOf(doc)
		items := make([]any, len(ks))
		for j := range ks {
			items[j] = ks[j]
		}
		res[i] = items
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}

// patternArg reads a pattern written on the command line.
func patternArg(s string) (match.Pattern, error) {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		return match.Compile(s[1 : len(s)-1])
	}
	if g, ok := strings.CutPrefix(s, "glob:"); ok {
		return match.Glob(g)
	}
	if src, ok := strings.CutPrefix(s, "="); ok {
		return match.Expr(src)
	}
	return match.Lit(s), nil
}

func entriesMap(entries []match.Entry) *object.Map {
	m := object.NewMap()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}
