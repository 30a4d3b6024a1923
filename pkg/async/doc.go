// Package async runs work detached from the request lifecycle.
//
// Fire starts a function on its own goroutine with a context that survives
// cancellation of the originating request. It is meant for fire-and-forget
// side effects such as forwarding a record to a backend: the caller never
// waits for the result and failures never propagate back.
//
//	async.Fire(r.Context(), log, func(ctx context.Context) {
//	    if err := sink.Deliver(ctx, path, rec); err != nil {
//	        log.DebugContext(ctx, "delivery failed", logger.Error(err))
//	    }
//	})
//
// A panic inside the function is recovered and logged instead of crashing
// the process.
package async
