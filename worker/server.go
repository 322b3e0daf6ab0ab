package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/libdiff"
	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"

	"go.lsp.dev/jsonrpc2"
)

var ErrNotCached = errors.New("tree not cached")

type Server struct {
	cache *Cache
}

func NewServer(cache *Cache) *Server {
	if cache == nil {
		cache = NewCache(DefaultCacheSize)
	}
	return &Server{cache: cache}
}

func (s *Server) Cache() *Cache {
	return s.cache
}

// Serve answers requests on rwc until the peer closes it or ctx is
// done. Requests are handled one at a time in arrival order. When ctx
// is done rwc is closed and Serve returns without waiting for a read in
// progress.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, s *Server) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handler())
	select {
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	case <-conn.Done():
	}
	err := conn.Err()
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}

// Handler dispatches requests to s.
func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if debug.Worker() {
			debug.Logf("worker: %s %d bytes\n", req.Method(), len(req.Params()))
		}
		switch req.Method() {
		case MethodParse:
			p := &ParseParams{}
			if err := decode(req, p); err != nil {
				return reply(ctx, nil, err)
			}
			return reply(ctx, s.Parse(p), nil)
		case MethodDiff:
			p := &DiffParams{}
			if err := decode(req, p); err != nil {
				return reply(ctx, nil, err)
			}
			res, err := s.Diff(p)
			return reply(ctx, res, err)
		case MethodBrackets:
			p := &BracketsParams{}
			if err := decode(req, p); err != nil {
				return reply(ctx, nil, err)
			}
			return reply(ctx, s.Brackets(p), nil)
		case MethodFormat:
			p := &FormatParams{}
			if err := decode(req, p); err != nil {
				return reply(ctx, nil, err)
			}
			res, err := s.Format(p)
			return reply(ctx, res, err)
		case MethodDiagnostics:
			p := &DiagnosticsParams{}
			if err := decode(req, p); err != nil {
				return reply(ctx, nil, err)
			}
			return reply(ctx, s.Diagnostics(p), nil)
		}
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func decode(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return fmt.Errorf("%s: %w", req.Method(), jsonrpc2.ErrInvalidParams)
	}
	return nil
}

func (s *Server) parse(ref DocRef, text string, opts ParseOptions) *tree.Tree {
	if t, ok := s.cache.lookup(ref, text, opts); ok {
		return t
	}
	t := parse.Parse(text, opts.Options(ref.Version)...)
	s.cache.put(ref, t, opts)
	return t
}

func (s *Server) Parse(p *ParseParams) *ParseResult {
	t := s.parse(p.DocRef, p.Text, p.Options)
	return &ParseResult{DocRef: p.DocRef, Tree: t.ToObject()}
}

func (s *Server) Diff(p *DiffParams) (*DiffResult, error) {
	left, err := s.side(p.Left, p.LeftRef)
	if err != nil {
		return nil, err
	}
	right, err := s.side(p.Right, p.RightRef)
	if err != nil {
		return nil, err
	}
	opts := []libdiff.DiffOption{libdiff.WithTextCompare(p.TextCompare)}
	if p.Budget > 0 {
		opts = append(opts, libdiff.DiffBudget(p.Budget))
	}
	res := libdiff.DiffTrees(left, right, opts...)
	return &DiffResult{DocRef: p.DocRef, Result: *res}, nil
}

func (s *Server) side(snap *tree.Snapshot, ref *DocRef) (*tree.Tree, error) {
	if snap != nil {
		return tree.FromObject(snap), nil
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: diff side has neither snapshot nor reference", jsonrpc2.ErrInvalidParams)
	}
	t, ok := s.cache.Get(*ref)
	if !ok {
		return nil, fmt.Errorf("%w: %s version %d", ErrNotCached, ref.DocumentID, ref.Version)
	}
	return t, nil
}

func (s *Server) Brackets(p *BracketsParams) *BracketsResult {
	pairs := token.FindBracketPairs([]byte(p.Text))
	if pairs == nil {
		pairs = [][2]int{}
	}
	return &BracketsResult{DocRef: p.DocRef, Pairs: pairs}
}

// Format pretty prints the text of p.
func (s *Server) Format(p *FormatParams) (*FormatResult, error) {
	opts := p.Options
	opts.Format = true
	t := s.parse(p.DocRef, p.Text, opts)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t, buf, parse.EncodeOptions(opts.Options(p.Version)...)...); err != nil {
		return nil, err
	}
	return &FormatResult{DocRef: p.DocRef, Text: buf.String(), Valid: t.Valid()}, nil
}

func (s *Server) Diagnostics(p *DiagnosticsParams) *DiagnosticsResult {
	t := s.parse(p.DocRef, p.Text, ParseOptions{})
	return &DiagnosticsResult{DocRef: p.DocRef, Diagnostics: Diagnostics(t)}
}
