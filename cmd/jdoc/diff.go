package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/libdiff"
	"github.com/signadot/jsondoc/tree"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if count(cfg.Patch, cfg.Merge, cfg.Lines, cfg.JSON) > 1 {
		return fmt.Errorf("%w: at most one of -patch -merge -lines -json", cli.ErrUsage)
	}
	left, err := cfg.load(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	right, err := cfg.load(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res := libdiff.DiffTrees(left, right, cfg.diffOpts()...)
	if cfg.Reverse {
		res = libdiff.Reverse(res)
		left, right = right, left
	}
	if err := cfg.write(cc.Out, res, left, right); err != nil {
		return err
	}
	if cfg.Stats {
		fmt.Fprintln(cc.Out, res.Stats())
	}
	if res.Changed() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *DiffConfig) load(cc *cli.Context, path string) (*tree.Tree, error) {
	if !cfg.Snapshot {
		t, err := parseInput(cc, path, cfg.parseOpts()...)
		if err != nil {
			return nil, err
		}
		if !t.Valid() {
			reportErrors(path, t)
		}
		return t, nil
	}
	text, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	t := &tree.Tree{}
	if err := json.Unmarshal([]byte(text), t); err != nil {
		return nil, err
	}
	if err := libdiff.Validate(t); err != nil {
		theLog.Warn("malformed snapshot", "file", path, "error", err)
	}
	return t, nil
}

func (cfg *DiffConfig) write(w io.Writer, res *libdiff.Result, left, right *tree.Tree) error {
	switch {
	case cfg.Lines:
		from, err := cfg.pretty(left)
		if err != nil {
			return err
		}
		to, err := cfg.pretty(right)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, libdiff.FormatLines(libdiff.TextDiff(from, to)))
		return err
	case cfg.Merge:
		if !left.Valid() || !right.Valid() {
			return errors.New("merge patches need documents without syntax errors")
		}
		mp, err := jsonpatch.CreateMergePatch(
			[]byte(encode.Compact(left, left.Root)),
			[]byte(encode.Compact(right, right.Root)))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", mp)
		return err
	case cfg.Patch:
		ops, err := libdiff.JSONPatch(res, left, right)
		if err != nil {
			return err
		}
		return writeJSON(w, ops)
	case cfg.JSON:
		return writeJSON(w, res)
	}
	return libdiff.FormatPretty(w, res, left, right, cfg.formatOpts(w)...)
}

func (cfg *DiffConfig) pretty(t *tree.Tree) (string, error) {
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{
		encode.EncodePretty(true),
		encode.EncodeSort(cfg.Sort),
		encode.EncodeTabWidth(cfg.TabWidth),
	}
	if err := encode.Encode(t, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeJSON(w io.Writer, v any) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
