package async

import (
	"context"
	"log/slog"
)

// Fire runs fn on a new goroutine with a context detached from ctx: values
// are preserved but cancellation is not, so the work outlives the request
// that triggered it. A nil log falls back to the discard handler.
func Fire(ctx context.Context, log *slog.Logger, fn func(context.Context)) {
	if fn == nil {
		return
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.ErrorContext(detached, "panic in background task", slog.Any("panic", rec))
			}
		}()
		fn(detached)
	}()
}
