package main

import (
	"fmt"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	p, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	target := inputs(args[1:])[0]
	doc, err := parseInput(cc, target, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if !doc.Valid() {
		reportErrors(target, doc)
		return fmt.Errorf("cannot patch %s: it has syntax errors", target)
	}
	src := []byte(encode.Compact(doc, doc.Root))
	var out []byte
	if cfg.Merge {
		out, err = jsonpatch.MergePatch(src, []byte(p))
	} else {
		var ops jsonpatch.Patch
		ops, err = jsonpatch.DecodePatch([]byte(p))
		if err != nil {
			return fmt.Errorf("error decoding patch %s: %w", args[0], err)
		}
		out, err = ops.Apply(src)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	res := parse.Parse(string(out), cfg.parseOpts()...)
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if !cfg.Pretty {
		fmt.Fprintln(cc.Out)
	}
	return nil
}
