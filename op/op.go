package op

import (
	"context"
	"errors"
)

// Handler is the function signature for local tool handlers.
// It matches the handler shape used across the tool* module family.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Operation is a unit of requested work with a declared capability.
//
// Contract:
// - Concurrency: Run is called at most once; the returned channel has a single consumer.
// - Context: implementations must honor cancellation and emit a canceled terminal event.
// - Errors: failures are terminal events, never panics or bare channel closes.
// - Streaming: zero or more progress events, then exactly one terminal event, then close.
type Operation interface {
	// ID returns the identifier used to correlate results with requests.
	ID() string

	// ReadOnly reports whether the operation is free of side effects.
	// It is pure and fixed at construction; the dispatch policy reads it
	// before execution starts.
	ReadOnly() bool

	// Run starts the operation and returns its event stream. Work begins
	// on the call, so schedulers defer it until a slot is free. The
	// stream is consumed exactly once and is not restartable.
	Run(ctx context.Context) <-chan Event
}

// Func is the body of a single-result operation.
type Func func(ctx context.Context) (any, error)

// Streamer is the body of an operation that emits intermediate progress
// items before returning its final value. emit blocks until the consumer
// pulls the item, or returns early once ctx is canceled.
type Streamer func(ctx context.Context, emit func(any)) (any, error)

// NewFunc returns an operation that produces a single terminal event
// from fn.
func NewFunc(id string, readOnly bool, fn Func) Operation {
	return &streamOp{
		id:       id,
		readOnly: readOnly,
		fn: func(ctx context.Context, _ func(any)) (any, error) {
			return fn(ctx)
		},
	}
}

// NewStreaming returns an operation that forwards each emit call as a
// progress event before its terminal event.
func NewStreaming(id string, readOnly bool, fn Streamer) Operation {
	return &streamOp{id: id, readOnly: readOnly, fn: fn}
}

type streamOp struct {
	id       string
	readOnly bool
	fn       Streamer
}

func (o *streamOp) ID() string {
	return o.id
}

func (o *streamOp) ReadOnly() bool {
	return o.readOnly
}

func (o *streamOp) Run(ctx context.Context) <-chan Event {
	// Unbuffered: progress items are produced on demand, one pull at a time.
	ch := make(chan Event)
	go func() {
		defer close(ch)
		if err := ctx.Err(); err != nil {
			ch <- Canceled(err)
			return
		}
		emit := func(data any) {
			select {
			case ch <- Progress(data):
			case <-ctx.Done():
			}
		}
		value, err := o.fn(ctx, emit)
		switch {
		case err == nil:
			ch <- Done(value)
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			ch <- Canceled(err)
		default:
			ch <- Fail(err)
		}
	}()
	return ch
}
