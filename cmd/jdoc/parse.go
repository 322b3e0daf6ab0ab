package main

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/tree"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func parseDocs(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		cfg.Parse.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Version < 0 {
		return fmt.Errorf("%w: -version must not be negative", cli.ErrUsage)
	}
	opts := cfg.parseOpts()
	if cfg.Version > 0 {
		opts = append(opts, parse.ParseVersion(int64(cfg.Version)))
	}
	invalid := false
	for _, path := range inputs(args) {
		t, err := parseInput(cc, path, opts...)
		if err != nil {
			return err
		}
		if !t.Valid() {
			invalid = true
		}
		var v any = t.ToObject()
		if cfg.Errors {
			errs := t.Errors
			if errs == nil {
				errs = []tree.ErrorWindow{}
			}
			v = errs
		}
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		if cfg.YAML {
			d, err = yaml.JSONToYAML(d)
			if err != nil {
				return fmt.Errorf("error converting %s to yaml: %w", path, err)
			}
		} else {
			d = append(d, '\n')
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	if invalid && cfg.Strict {
		return cli.ExitCodeErr(1)
	}
	return nil
}
