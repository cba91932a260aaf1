// Command lvtrace generates, plays and compares graph algorithm traces,
// and serves them over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kataras/golog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		golog.Error(err)
		stop()
		os.Exit(1)
	}
}
