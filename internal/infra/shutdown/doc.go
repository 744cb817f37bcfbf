// Package shutdown cancels the running command on SIGINT or SIGTERM.
//
// Usage:
//
//	h := shutdown.NewHandler(2 * time.Second)
//	ctx, stop := h.Context(context.Background())
//	defer stop()
//
// In-flight requests observe ctx and abort. Hooks registered with
// OnShutdown run once the context is canceled by a signal, and stop
// waits for them before returning.
package shutdown
