package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

type runner interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

var (
	stderr  io.Writer = os.Stderr
	exitFn            = os.Exit
)

// run starts app and blocks until ctx is cancelled or app requests shutdown.
func run(ctx context.Context, app runner) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(stderr, err)
	exitFn(1)
}
