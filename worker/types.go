package worker

import (
	"github.com/signadot/jsondoc/libdiff"
	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/tree"

	"go.lsp.dev/protocol"
)

const (
	MethodParse       = "parse"
	MethodDiff        = "diff"
	MethodBrackets    = "brackets"
	MethodFormat      = "format"
	MethodDiagnostics = "diagnostics"
)

// DocRef names a version of a document.
type DocRef struct {
	DocumentID string `json:"documentId"`
	Version    int64  `json:"version"`
}

type ParseOptions struct {
	Nest           bool `json:"nest,omitempty"`
	Format         bool `json:"format,omitempty"`
	Sort           bool `json:"sort,omitempty"`
	TabWidth       int  `json:"tabWidth,omitempty"`
	PrettyMaxWidth int  `json:"prettyMaxWidth,omitempty"`
	PreviewWidth   int  `json:"previewWidth,omitempty"`
}

// Options returns the parse options for a tree of the given version.
func (o ParseOptions) Options(version int64) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseVersion(version),
		parse.ParseNest(o.Nest),
		parse.ParseFormat(o.Format),
		parse.ParseSort(o.Sort),
		parse.ParsePrettyMaxWidth(o.PrettyMaxWidth),
		parse.ParsePreviewWidth(o.PreviewWidth),
	}
	if o.TabWidth > 0 {
		res = append(res, parse.ParseTabWidth(o.TabWidth))
	}
	return res
}

type ParseParams struct {
	DocRef
	Text    string       `json:"text"`
	Options ParseOptions `json:"options"`
}

type ParseResult struct {
	DocRef
	Tree *tree.Snapshot `json:"tree"`
}

// DiffParams compares two trees. Each side is either a snapshot or a
// reference to a tree parsed earlier on the same server; a snapshot
// takes precedence.
type DiffParams struct {
	DocRef
	Left        *tree.Snapshot `json:"left,omitempty"`
	Right       *tree.Snapshot `json:"right,omitempty"`
	LeftRef     *DocRef        `json:"leftRef,omitempty"`
	RightRef    *DocRef        `json:"rightRef,omitempty"`
	TextCompare bool           `json:"needTextCompare,omitempty"`
	Budget      int            `json:"budget,omitempty"`
}

type DiffResult struct {
	DocRef
	libdiff.Result
}

type BracketsParams struct {
	DocRef
	Text string `json:"text"`
}

type BracketsResult struct {
	DocRef
	Pairs [][2]int `json:"pairs"`
}

type FormatParams struct {
	DocRef
	Text    string       `json:"text"`
	Options ParseOptions `json:"options"`
}

type FormatResult struct {
	DocRef
	Text  string `json:"text"`
	Valid bool   `json:"valid"`
}

type DiagnosticsParams struct {
	DocRef
	Text string `json:"text"`
}

type DiagnosticsResult struct {
	DocRef
	Diagnostics []protocol.Diagnostic `json:"diagnostics"`
}
