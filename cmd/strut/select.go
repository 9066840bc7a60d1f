package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/scrapekit/strut/encode"
	"github.com/scrapekit/strut/eval"
	"github.com/scrapekit/strut/parse"
)

func sel(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: select needs -e <expr>", cli.ErrUsage)
	}
	if len(args) == 0 {
		return selectReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := selectFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func selectFile(cfg *SelectConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := selectReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func selectReader(cfg *SelectConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	root, err := parse.Parse(string(in))
	if err != nil {
		return err
	}
	if root == nil {
		return fmt.Errorf("input recognized as neither json nor markup")
	}
	nodes, err := eval.Select(root, cfg.Expr)
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(w)
	for _, n := range nodes {
		fmt.Fprintf(w, "%s\n", n.Path())
		if err := encode.Encode(w, n, encOpts...); err != nil {
			return err
		}
	}
	return nil
}
