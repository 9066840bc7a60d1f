package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scrapekit/strut/encode"
	"github.com/scrapekit/strut/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs exactly two files", cli.ErrUsage)
	}
	from, err := canonical(args[0])
	if err != nil {
		return err
	}
	to, err := canonical(args[1])
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	return nil
}

// canonical parses file and re-encodes its tree without colors so the
// two sides diff on structure, not on incidental formatting.
func canonical(file string) (string, error) {
	in, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", file, err)
	}
	node, err := parse.Parse(string(in))
	if err != nil {
		return "", fmt.Errorf("error processing %s: %w", file, err)
	}
	if node == nil {
		return "", fmt.Errorf("%s recognized as neither json nor markup", file)
	}
	var buf bytes.Buffer
	if err := encode.Encode(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}
