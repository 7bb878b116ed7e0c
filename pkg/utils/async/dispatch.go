package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatcher runs jobs in the background, detached from the cancellation of
// the context they were dispatched from. Values such as the logger are kept.
type Dispatcher struct {
	wg sync.WaitGroup
}

// Dispatch starts job in a new goroutine. Errors and panics are logged and
// reported to Sentry, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, job func(ctx context.Context) error) {
	jobCtx := context.WithoutCancel(ctx)
	logger := ctxlog.From(jobCtx).With("job", name)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				err := goerr.New("panic in background job", goerr.V("recover", r))
				logger.Error("Panic in background job", "recover", r, "stack", string(debug.Stack()))
				sentry.CaptureException(err)
			}
		}()

		if err := job(jobCtx); err != nil {
			logger.Error("Background job failed", "error", err)
			sentry.CaptureException(err)
		}
	}()
}

// Wait blocks until every dispatched job has returned or ctx is done
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "background jobs did not finish")
	}
}
