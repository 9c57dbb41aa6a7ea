// Command betweenness loads or generates an undirected graph, computes the
// betweenness centrality of every vertex and prints a feature table.
//
// Usage:
//
//	betweenness --input ppi.tsv --strip-suffix _ --workers 8
//	betweenness --generate ba:1000:3:42 --format json
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
		// cobra has already printed err on stderr.
		stop()
		os.Exit(1)
	}
}
