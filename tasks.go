package isptranslator

import (
	"context"
	"sync"
	"time"
)

// DefaultTaskTimeout bounds a single background write-back.
const DefaultTaskTimeout = 30 * time.Second

// Tasks is an owned-lifetime background task group for post-response cache
// writes. Functions scheduled with Go run on a context detached from the
// request, so a client disconnect does not abandon a write-back that is
// already in flight. The hosting process drains the group on shutdown
// instead of letting the runtime drop unfinished tasks.
type Tasks struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

// NewTasks creates a task group with the default per-task timeout.
func NewTasks() *Tasks {
	return &Tasks{timeout: DefaultTaskTimeout}
}

// Go schedules fn to run in the background. fn receives a fresh context with
// the group's per-task timeout.
func (t *Tasks) Go(fn func(ctx context.Context)) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		fn(ctx)
	}()
}

// Drain blocks until every scheduled task has finished or ctx expires,
// returning ctx.Err() in the latter case. Tasks still running when Drain
// gives up keep running until their own timeouts fire.
func (t *Tasks) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
