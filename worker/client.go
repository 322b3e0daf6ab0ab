package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/signadot/jsondoc/debug"

	"go.lsp.dev/jsonrpc2"
)

// ErrStale is returned for a response to a version older than the
// latest one submitted for its document.
var ErrStale = errors.New("stale response")

type Client struct {
	conn jsonrpc2.Conn

	mu     sync.Mutex
	latest map[string]int64
}

func NewClient(ctx context.Context, rwc io.ReadWriteCloser) *Client {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	return &Client{conn: conn, latest: map[string]int64{}}
}

// Submit records ref as submitted. Responses for earlier versions of
// the same document become stale.
func (c *Client) Submit(ref DocRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.latest[ref.DocumentID]; !ok || ref.Version > v {
		c.latest[ref.DocumentID] = ref.Version
	}
}

// Latest returns the latest version submitted for documentID.
func (c *Client) Latest(documentID string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.latest[documentID]
	return v, ok
}

func (c *Client) stale(ref DocRef) bool {
	v, ok := c.Latest(ref.DocumentID)
	return ok && ref.Version < v
}

func (c *Client) call(ctx context.Context, method string, ref DocRef, params, result any) error {
	c.Submit(ref)
	if _, err := c.conn.Call(ctx, method, params, result); err != nil {
		return err
	}
	if c.stale(ref) {
		if debug.Worker() {
			debug.Logf("worker: dropping %s for %s version %d\n", method, ref.DocumentID, ref.Version)
		}
		return fmt.Errorf("%w: %s version %d", ErrStale, ref.DocumentID, ref.Version)
	}
	return nil
}

func (c *Client) Parse(ctx context.Context, p *ParseParams) (*ParseResult, error) {
	res := &ParseResult{}
	if err := c.call(ctx, MethodParse, p.DocRef, p, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Diff(ctx context.Context, p *DiffParams) (*DiffResult, error) {
	res := &DiffResult{}
	if err := c.call(ctx, MethodDiff, p.DocRef, p, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Brackets(ctx context.Context, p *BracketsParams) (*BracketsResult, error) {
	res := &BracketsResult{}
	if err := c.call(ctx, MethodBrackets, p.DocRef, p, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Format(ctx context.Context, p *FormatParams) (*FormatResult, error) {
	res := &FormatResult{}
	if err := c.call(ctx, MethodFormat, p.DocRef, p, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Diagnostics(ctx context.Context, p *DiagnosticsParams) (*DiagnosticsResult, error) {
	res := &DiagnosticsResult{}
	if err := c.call(ctx, MethodDiagnostics, p.DocRef, p, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Close() error {
	err := c.conn.Close()
	<-c.conn.Done()
	return err
}
