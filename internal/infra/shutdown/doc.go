// Package shutdown runs cleanup hooks when the process is asked to stop.
//
// A Handler waits for SIGINT, SIGTERM or cancellation of the caller's
// context, then runs the registered hooks in reverse order under a timeout:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return watcher.Stop() })
//	err := h.Wait(ctx)
package shutdown
