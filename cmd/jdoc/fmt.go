package main

import (
	"fmt"

	"github.com/signadot/jsondoc/encode"

	"github.com/scott-cotton/cli"
)

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	invalid := false
	for _, path := range inputs(args) {
		t, err := parseInput(cc, path, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := encode.Encode(t, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		if !cfg.Pretty {
			fmt.Fprintln(cc.Out)
		}
		if !t.Valid() {
			reportErrors(path, t)
			invalid = true
		}
	}
	if invalid && cfg.Check {
		return cli.ExitCodeErr(1)
	}
	return nil
}
