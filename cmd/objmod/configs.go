package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color diffs'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml (default)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) asJSON() bool {
	return cfg.J
}

// colors reports whether output to w should be colored: when -color is
// given, or when it is not and w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Expr bool `cli:"name=e desc='the value is an expression'"`

	Set *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Quantifier string `cli:"name=q desc='quantifier: any, all or many'"`
	Values     bool   `cli:"name=v desc='print matching entries rather than keys'"`

	Keys *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	Diff  bool `cli:"name=diff desc='print a line diff of each document'"`
	Patch bool `cli:"name=patch desc='print the json merge patch of each document'"`

	Apply *cli.Command
}
