// Package signal turns SIGINT and SIGTERM into a cooperative stop request
// for the dockergen generation loop.
//
// The first signal runs the onInterrupt callback and cancels the run context;
// the loop notices the cancellation before it picks up the next work item, so
// the item being generated is allowed to finish. The handler unregisters
// itself after that first signal, which means a second Ctrl-C falls back to
// the default behavior and terminates the process immediately.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers. The registration
// is in place when the function returns; the listening goroutine exits when a
// signal arrives or ctx is done.
//
// Example usage:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	signal.SetupSignalHandler(ctx, cancel, func() {
//	    logging.Warn("Interrupted, finishing current item...")
//	})
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)

		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
		}
	}()
}
