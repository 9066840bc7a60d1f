package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/scrapekit/strut/debug"
	"github.com/scrapekit/strut/encode"
	"github.com/scrapekit/strut/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch needs a patch file and at most one input", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	var doc []byte
	if len(args) == 2 && args[1] != "-" {
		doc, err = os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("could not read %q: %w", args[1], err)
		}
	} else {
		doc, err = io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
	}
	trimmed := strings.TrimSpace(string(doc))
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return fmt.Errorf("patch input must be json")
	}
	out, err := applyPatch(cfg, []byte(trimmed), pd)
	if err != nil {
		return err
	}
	node, err := parse.Parse(string(out))
	if err != nil {
		return err
	}
	return encode.Encode(cc.Out, node, cfg.encOpts(cc.Out)...)
}

func applyPatch(cfg *PatchConfig, doc, pd []byte) ([]byte, error) {
	if debug.Patch() {
		debug.Logf("patch: %d byte doc, %d byte patch, merge=%v\n",
			len(doc), len(pd), cfg.MergePatch)
	}
	if cfg.MergePatch {
		out, err := jsonpatch.MergePatch(doc, pd)
		if err != nil {
			return nil, fmt.Errorf("merge patch: %w", err)
		}
		return out, nil
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return out, nil
}
