package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "objmod").
		WithSynopsis("objmod [opts] command [opts]").
		WithDescription("objmod selects and edits entries of yaml and json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return objmodMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			KeysCommand(cfg),
			ApplyCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the value at a path in each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [opts] <path> <value> [files]").
		WithDescription(setDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

const setDescription = `set the value at a path in each document and print the result.

The value is read as yaml, so 'set a.b 3' sets a number and 'set a.b "{x: 1}"'
an object. With -e the value is an expression, evaluated once per document
with the current value at the path as arg(0):

  objmod set -e replicas 'arg(0, 0) + 1' deploy.yaml

Paths never create missing objects: setting through a missing or non object
value is an error.`

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg, Quantifier: "many"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("keys").
		WithAliases("k").
		WithSynopsis("keys [opts] <pattern> [files]").
		WithDescription(keysDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
	cfg.Keys = cmd
	return cmd
}

const keysDescription = `print the keys of each document matching a pattern.

Patterns are written
  /re/       a regular expression
  glob:pat   a shell style glob
  =expr      an expression giving the value to compare keys with
  other      a literal

-q selects the quantifier: many (default) prints every matching key, any only
the first and all prints the keys only if every key matches.`

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [opts] <modifiers> [files]").
		WithDescription(applyDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

const applyDescription = `apply a file of modifiers to each document.

The modifiers file holds a list of modifiers:

  - desc: scale the web tier
    matcher: /^web/     # keys of the document to edit
    path: replicas      # path inside each matched value
    operation: add      # add (default), multiply or replace
    amount: 2           # or '=expr' to compute it

By default the edited documents are printed. -diff prints a line diff of
each document and -patch prints the json merge patch taking each document to
its edited form.`
