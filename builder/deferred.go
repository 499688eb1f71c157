package builder

import (
	"context"
	"sync"
)

// Runnable is an operation that can run inside a caller's transaction.
type Runnable interface {
	execIn(ctx context.Context, e *Engine) error
	completed() bool
	discard(err error)
}

// Deferred is an operation that has been described but not run. Exec runs it
// once; later calls return the first result.
type Deferred[T any] struct {
	engine *Engine
	run    func(ctx context.Context, e *Engine) (T, error)

	mu     sync.Mutex
	done   bool
	result T
	err    error
}

// NewDeferred wraps run for later execution on e.
func NewDeferred[T any](e *Engine, run func(ctx context.Context, e *Engine) (T, error)) *Deferred[T] {
	return &Deferred[T]{engine: e, run: run}
}

// Exec runs the operation on the engine it was built from.
func (d *Deferred[T]) Exec(ctx context.Context) (T, error) {
	if err := d.execIn(ctx, d.engine); err != nil {
		var zero T
		return zero, err
	}
	return d.Result()
}

// Result returns the outcome of a completed run. Before the operation has run
// it returns the zero value and a nil error. After a failed Batch it returns
// the batch error, and the operation runs again when executed.
func (d *Deferred[T]) Result() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result, d.err
}

func (d *Deferred[T]) execIn(ctx context.Context, e *Engine) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return d.err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	d.result, d.err = d.run(ctx, e)
	d.done = true
	return d.err
}

func (d *Deferred[T]) completed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

// discard forgets a result whose transaction was rolled back.
func (d *Deferred[T]) discard(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero T
	d.result, d.err, d.done = zero, err, false
}
