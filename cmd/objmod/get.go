package main

import (
	"fmt"

	"github.com/signadot/objmod/objpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	r := objpath.New(args[0])
	docs, err := readDocs(cc, args[1:])
	if err != nil {
		return err
	}
	res := make([]any, len(docs))
	for i, doc := range docs {
		res[i] = r.Get(doc)
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}
