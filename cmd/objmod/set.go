package main

import (
	"fmt"

	"github.com/signadot/objmod"
	"github.com/signadot/objmod/objpath"
	"github.com/signadot/objmod/value"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	r := objpath.New(args[0])
	v, err := setValue(cfg, args[1])
	if err != nil {
		return fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, args[1], err)
	}
	docs, err := readDocs(cc, args[2:])
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if _, err := r.Set(doc, v, r.Get(doc)); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return writeDocs(cfg.MainConfig, cc.Out, docs)
}

func setValue(cfg *SetConfig, arg string) (any, error) {
	if cfg.Expr {
		return value.CompileExpr(arg)
	}
	return objmod.Decode([]byte(arg))
}
