package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jdoc").
		WithSynopsis("jdoc [opts] command [opts]").
		WithDescription("jdoc parses, formats, queries and diffs JSON documents, broken ones included.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdocMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			FmtCommand(cfg),
			DiffCommand(cfg),
			BracketsCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg),
			WorkerCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [opts] [files]").
		WithDescription("parse documents and print their tree snapshots").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseDocs(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [opts] [files]").
		WithDescription("re-encode documents, reporting syntax errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDocs(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] a b").
		WithDescription(diffDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

const diffDescription = `diff compares two documents node by node.

Each changed node is listed with its id. Nodes present only in b are
inserts (+), nodes present only in a are deletes (-) and nodes whose
value changed are replaces (~). Array elements are aligned by value, so
an element that moved is reported under both of its ids.

diff exits with status 1 when the documents differ.

Output

By default the listing is printed. -patch prints an RFC 6902 JSON
patch turning a into b, -merge an RFC 7386 merge patch, -lines a line
diff of the pretty printed documents and -json the raw classification.`

func BracketsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BracketsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Brackets, "brackets").
		WithAliases("b").
		WithSynopsis("brackets [opts] [files]").
		WithDescription("find JSON values embedded in arbitrary text such as logs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return brackets(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [opts] <expr> [files]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return queryDocs(cfg, cc, args)
		})
}

const queryDescription = `query lists the nodes for which expr is true.

expr is an expr-lang expression over the variables
  id, path, kind, key, depth, raw, value, offset, length, children, message
and the functions at(id), number(raw) and parent(id). For example

  jdoc query 'kind == "number" && value > 100' doc.json`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("pa").
		WithSynopsis("patch [opts] <patchfile> [file]").
		WithDescription("apply an RFC 6902 JSON patch, or with -merge an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func WorkerCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WorkerConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Worker, "worker").
		WithSynopsis("worker [opts]").
		WithDescription("serve parse and diff requests as JSON-RPC on stdin and stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runWorker(cfg, cc, args)
		})
}
