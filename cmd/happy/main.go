package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/happy/cmd/happy/root"
)

func main() {
	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := root.Main(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}
