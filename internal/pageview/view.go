// Package pageview binds asynchronous loads to the lifetime of the view that
// requested them. A view settles exactly once; once closed, late completions
// are dropped instead of touching caller-visible state.
package pageview

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Wait when the view was torn down before settling.
var ErrClosed = errors.New("pageview: view closed")

// State is the lifecycle position of a View.
type State int

const (
	Loading State = iota
	Ready
	Failed
	Closed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// LoadFunc produces a view's data.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is a point-in-time copy of a View.
type Snapshot[T any] struct {
	State State
	Value T
	Err   error
}

// View tracks one load.
type View[T any] struct {
	mu     sync.Mutex
	state  State
	value  T
	err    error
	done   chan struct{}
	once   sync.Once
	cancel context.CancelFunc
}

// Start runs load on its own goroutine with a context derived from ctx.
func Start[T any](ctx context.Context, load LoadFunc[T]) *View[T] {
	ctx, cancel := context.WithCancel(ctx)
	v := &View[T]{state: Loading, done: make(chan struct{}), cancel: cancel}
	go func() {
		value, err := load(ctx)
		v.settle(value, err)
	}()
	return v
}

func (v *View[T]) settle(value T, err error) {
	v.mu.Lock()
	if v.state != Loading {
		v.mu.Unlock()
		return
	}
	if err != nil {
		v.state, v.err = Failed, err
	} else {
		v.state, v.value = Ready, value
	}
	v.mu.Unlock()
	v.finish()
}

func (v *View[T]) finish() {
	v.once.Do(func() {
		close(v.done)
		v.cancel()
	})
}

// Close tears the view down. A load still in flight sees its context
// cancelled and its result is discarded. Close is idempotent and leaves a
// settled view's data in place.
func (v *View[T]) Close() {
	v.mu.Lock()
	if v.state == Loading {
		v.state = Closed
	}
	v.mu.Unlock()
	v.finish()
}

// Done is closed once the view settles or is closed.
func (v *View[T]) Done() <-chan struct{} {
	return v.done
}

// Wait blocks until the view settles, is closed, or ctx is done.
func (v *View[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-v.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	snap := v.Snapshot()
	switch snap.State {
	case Ready:
		return snap.Value, nil
	case Failed:
		return snap.Value, snap.Err
	default:
		return snap.Value, ErrClosed
	}
}

// Snapshot returns the current state without blocking.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot[T]{State: v.state, Value: v.value, Err: v.err}
}
