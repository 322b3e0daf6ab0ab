package worker

import (
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"

	"go.lsp.dev/protocol"
)

const diagnosticSource = "jsondoc"

// Diagnostics converts the error windows of t into LSP diagnostics.
// Columns count UTF-16 code units.
func Diagnostics(t *tree.Tree) []protocol.Diagnostic {
	res := make([]protocol.Diagnostic, 0, len(t.Errors))
	pd := token.NewPosDoc([]byte(t.Text))
	for i := range t.Errors {
		w := &t.Errors[i]
		res = append(res, protocol.Diagnostic{
			Range: protocol.Range{
				Start: position(pd, w.Offset),
				End:   position(pd, w.Offset+w.Length),
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   diagnosticSource,
			Message:  w.Message,
		})
	}
	return res
}

func position(pd *token.PosDoc, off int) protocol.Position {
	line, col := pd.UTF16Col(off)
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}
