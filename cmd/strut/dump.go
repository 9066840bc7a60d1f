package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/scrapekit/strut/encode"
	"github.com/scrapekit/strut/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cfg, cc.Out, cc.In)
	}
	for i, file := range args {
		if err := dumpFile(cfg, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string) error {
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
	if err := dumpReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(cfg *DumpConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	node, err := parse.Parse(string(in), cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if node == nil {
		return fmt.Errorf("input recognized as neither json nor markup")
	}
	return encode.Encode(w, node, cfg.encOpts(w)...)
}
