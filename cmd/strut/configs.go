package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/scrapekit/strut/encode"
	"github.com/scrapekit/strut/parse"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='print trees as json'"`
	Y     bool `cli:"name=y aliases=yaml desc='print trees as yaml'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	switch {
	case cfg.J:
		res = append(res, encode.EncodeJSON())
	case cfg.Y:
		res = append(res, encode.EncodeYAML())
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Root string `cli:"name=root desc='root element name for json input'"`

	Dump *cli.Command
}

func (cfg *DumpConfig) parseOpts() []parse.ParseOption {
	if cfg.Root == "" {
		return nil
	}
	return []parse.ParseOption{parse.ParseRootName(cfg.Root)}
}

type SelectConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='selection expression'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=m aliases=merge desc='apply as rfc 7386 merge patch'"`

	Patch *cli.Command
}
