package main

import (
	"fmt"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/token"

	"github.com/scott-cotton/cli"
)

func brackets(cfg *BracketsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Brackets.Parse(cc, args)
	if err != nil {
		cfg.Brackets.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, path := range inputs(args) {
		text, err := readInput(cc, path)
		if err != nil {
			return err
		}
		if !cfg.Extract {
			for _, p := range token.FindBracketPairs([]byte(text)) {
				fmt.Fprintf(cc.Out, "%d %d\n", p[0], p[1])
			}
			continue
		}
		for _, x := range parse.Extract(text, cfg.parseOpts()...) {
			if err := encode.Encode(x.Tree, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
			if !cfg.Pretty {
				fmt.Fprintln(cc.Out)
			}
		}
	}
	return nil
}
