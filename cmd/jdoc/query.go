package main

import (
	"fmt"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/query"

	"github.com/scott-cotton/cli"
)

func queryDocs(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	total := 0
	for _, path := range inputs(args[1:]) {
		t, err := parseInput(cc, path, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		nodes, err := q.Select(t)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		total += len(nodes)
		if cfg.Count {
			continue
		}
		for _, n := range nodes {
			if cfg.IDs {
				fmt.Fprintln(cc.Out, n.ID)
				continue
			}
			fmt.Fprintf(cc.Out, "%s\t%s\t%s\n", n.ID, n.Type, encode.Compact(t, n.ID))
		}
	}
	if cfg.Count {
		fmt.Fprintln(cc.Out, total)
	}
	return nil
}
