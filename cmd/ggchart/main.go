// Command ggchart renders the speedup versus LPIPS comparison chart.
//
// Usage:
//
//	ggchart [render] [-o speedup_lpips.png] [--format png|jpeg|svg|pdf|eps]
//	ggchart describe
//	ggchart backends
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
