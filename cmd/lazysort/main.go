// Command lazysort sorts lines of text with a lazily sorted list.
//
//	lazysort [flags] [file ...]
//
// With no files it reads standard input. See lazysort --help for the
// available orderings.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
