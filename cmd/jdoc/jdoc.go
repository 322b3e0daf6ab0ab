package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/tree"

	"github.com/scott-cotton/cli"
)

func jdocMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	fc, err := loadFileConfig(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.applyFile(fc)
	if cfg.TabWidth < 0 || cfg.MaxWidth < 0 {
		return fmt.Errorf("%w: -tab and -width must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readInput reads path, or the command input when path is "-".
func readInput(cc *cli.Context, path string) (string, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	return string(d), nil
}

func parseInput(cc *cli.Context, path string, opts ...parse.ParseOption) (*tree.Tree, error) {
	text, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(text, opts...), nil
}

// inputs defaults to reading the command input.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// reportErrors logs the syntax errors of t.
func reportErrors(path string, t *tree.Tree) {
	for _, n := range t.ErrorNodes() {
		for _, w := range n.Errors {
			theLog.Warn(w.Message, "file", path, "id", n.ID, "offset", w.Offset, "context", w.Context[0]+w.Context[1]+w.Context[2])
		}
	}
}
