package main

import (
	"io"
	"log/slog"
	"os"
)

// stdout carries documents and, under the worker command, RPC responses,
// so diagnostics go to stderr.
var theLog = newLog(os.Stderr)

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
				return slog.Attr{}
			}
			return a
		},
	}))
}
