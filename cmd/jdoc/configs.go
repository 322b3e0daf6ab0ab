package main

import (
	"io"
	"os"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/libdiff"
	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Pretty     bool   `cli:"name=pretty desc='pretty print output'"`
	Sort       bool   `cli:"name=sort desc='sort object members by key'"`
	Nest       bool   `cli:"name=nest desc='parse string values holding JSON'"`
	Color      bool   `cli:"name=color desc='encode with color'"`
	TabWidth   int    `cli:"name=tab desc='indent width, 0 indents with tabs'"`
	MaxWidth   int    `cli:"name=width desc='keep containers up to this width on one line'"`
	ConfigFile string `cli:"name=config desc='yaml defaults file (default .jsondoc.yaml if present)'"`

	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// applyFile fills the options not given on the command line from the
// defaults file.
func (cfg *MainConfig) applyFile(fc *FileConfig) {
	cfg.File = fc
	if !cfg.optSet("pretty") {
		cfg.Pretty = fc.Encode.Pretty
	}
	if !cfg.optSet("sort") {
		cfg.Sort = fc.Encode.Sort
	}
	if !cfg.optSet("nest") {
		cfg.Nest = fc.Parse.Nest
	}
	if !cfg.optSet("tab") {
		cfg.TabWidth = fc.Encode.TabWidth
	}
	if !cfg.optSet("width") {
		cfg.MaxWidth = fc.Encode.MaxWidth
	}
}

func (cfg *MainConfig) fileConfig() *FileConfig {
	if cfg.File == nil {
		return DefaultFileConfig()
	}
	return cfg.File
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fc := cfg.fileConfig()
	return []parse.ParseOption{
		parse.ParseNest(cfg.Nest),
		parse.ParsePreviewWidth(fc.Parse.PreviewWidth),
		parse.ParseFormat(cfg.Pretty),
		parse.ParseSort(cfg.Sort),
		parse.ParseTabWidth(cfg.TabWidth),
		parse.ParsePrettyMaxWidth(cfg.MaxWidth),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := parse.EncodeOptions(cfg.parseOpts()...)
	if cfg.color(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// color decides whether output to w is colored: an explicit -color
// wins, then the defaults file, then whether w is a terminal.
func (cfg *MainConfig) color(w io.Writer) bool {
	if cfg.optSet("color") {
		return cfg.Color
	}
	if c := cfg.fileConfig().Encode.Color; c != nil {
		return *c
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ParseConfig struct {
	*MainConfig
	YAML    bool `cli:"name=yaml desc='print snapshots as yaml'"`
	Errors  bool `cli:"name=errors desc='print only the error windows'"`
	Strict  bool `cli:"name=strict desc='exit with status 1 if a document has syntax errors'"`
	Version int  `cli:"name=version desc='version recorded in the snapshot'"`

	Parse *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='exit with status 1 if a document has syntax errors'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse  bool `cli:"name=r desc='reverse the diff'"`
	Text     bool `cli:"name=text desc='compare changed scalars character by character'"`
	Patch    bool `cli:"name=patch desc='print an RFC 6902 JSON patch'"`
	Merge    bool `cli:"name=merge desc='print an RFC 7386 merge patch'"`
	Lines    bool `cli:"name=lines desc='print a line diff of the pretty printed documents'"`
	JSON     bool `cli:"name=json desc='print the diff classification as JSON'"`
	Stats    bool `cli:"name=stats desc='print change counts'"`
	Snapshot bool `cli:"name=snapshot desc='inputs are tree snapshots rather than documents'"`
	Budget   int  `cli:"name=budget desc='bound on array alignment and text compare input sizes'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) diffOpts() []libdiff.DiffOption {
	fc := cfg.fileConfig()
	budget := fc.Diff.Budget
	if cfg.Budget > 0 {
		budget = cfg.Budget
	}
	return []libdiff.DiffOption{
		libdiff.WithTextCompare(cfg.Text || fc.Diff.TextCompare),
		libdiff.DiffBudget(budget),
	}
}

func (cfg *DiffConfig) formatOpts(w io.Writer) []libdiff.FormatOption {
	res := []libdiff.FormatOption{libdiff.FormatWidth(cfg.fileConfig().Diff.Width)}
	if cfg.color(w) {
		res = append(res, libdiff.FormatColors(true))
	}
	return res
}

type BracketsConfig struct {
	*MainConfig
	Extract bool `cli:"name=x desc='print the documents found rather than their spans'"`

	Brackets *cli.Command
}

type QueryConfig struct {
	*MainConfig
	IDs   bool `cli:"name=ids desc='print only node ids'"`
	Count bool `cli:"name=c desc='print only the number of matches'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type WorkerConfig struct {
	*MainConfig
	Gops      bool `cli:"name=gops desc='start a gops diagnostics agent'"`
	CacheSize int  `cli:"name=cache desc='number of parsed trees kept'"`

	Worker *cli.Command
}
