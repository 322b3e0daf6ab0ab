package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/signadot/jsondoc/worker"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func runWorker(cfg *WorkerConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Worker.Parse(cc, args)
	if err != nil {
		cfg.Worker.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := worker.NewServer(worker.NewCache(cfg.CacheSize))
	theLog.Info("worker started", "pid", os.Getpid())
	err = worker.Serve(ctx, &stdioReadWriteCloser{read: cc.In, write: cc.Out}, s)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
