package sched

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jonwraymond/tooldispatch/op"
)

// ErrTruncatedStream indicates an operation closed its event stream
// without a terminal event. The scheduler converts the violation into a
// terminal error envelope so every batch member still resolves.
var ErrTruncatedStream = errors.New("sched: operation stream ended without terminal event")

// Envelope pairs an operation event with the identity of its origin, so
// consumers can restore request order after the merged stream has
// interleaved completions.
type Envelope struct {
	// Index is the operation's position in the submitted batch.
	Index int

	// OpID identifies the originating operation.
	OpID string

	// Event is the item pulled from the operation's stream.
	Event op.Event

	// Elapsed is the operation's running time; set on terminal events.
	Elapsed time.Duration
}

// Scheduler runs batches of operations with bounded fan-out.
//
// Contract:
// - Concurrency: safe for concurrent use; each Run owns its own session state.
// - Context: a canceled context stops new starts and drains in-flight work.
// - Errors: one operation's failure never aborts its siblings.
// - Ownership: the batch slice is read-only; each operation is consumed once.
type Scheduler struct {
	cfg Config
}

// New creates a Scheduler with the given options.
func New(opts ...Option) *Scheduler {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	cfg.applyDefaults()
	return &Scheduler{cfg: cfg}
}

// MaxConcurrency returns the configured fan-out window size.
func (s *Scheduler) MaxConcurrency() int {
	return s.cfg.MaxConcurrency
}

// Run executes up to MaxConcurrency operations from batch at once and
// returns the merged event stream. Envelopes arrive in completion
// order; ties go to whichever operation's next item is ready first. The
// caller must drain the returned channel: it closes only after every
// batch member has produced exactly one terminal envelope.
//
// An empty batch closes the stream immediately with nothing started. A
// window at least as large as the batch starts everything at once.
func (s *Scheduler) Run(ctx context.Context, batch []op.Operation) <-chan Envelope {
	out := make(chan Envelope)
	go func() {
		defer close(out)
		if len(batch) == 0 {
			return
		}
		if s.cfg.Logger != nil {
			s.cfg.Logger.Logf("sched: running %d operations, window %d", len(batch), s.cfg.MaxConcurrency)
		}

		sem := semaphore.NewWeighted(int64(s.cfg.MaxConcurrency))
		var wg sync.WaitGroup
		for i, operation := range batch {
			// Slots are granted in submission order. A canceled context
			// fails acquisition, so queued operations are never started
			// and resolve as canceled instead of going missing.
			if err := sem.Acquire(ctx, 1); err != nil {
				out <- Envelope{Index: i, OpID: operation.ID(), Event: op.Canceled(err)}
				continue
			}
			wg.Add(1)
			go func(index int, o op.Operation) {
				defer wg.Done()
				defer sem.Release(1)
				s.forward(ctx, out, index, o)
			}(i, operation)
		}
		wg.Wait()
	}()
	return out
}

// forward pulls every event from a single operation and tags it with its
// submission index, producing exactly one terminal envelope.
func (s *Scheduler) forward(ctx context.Context, out chan<- Envelope, index int, operation op.Operation) {
	start := time.Now()
	terminal := false
	for ev := range operation.Run(ctx) {
		if terminal {
			// One terminal per operation; anything after it is dropped.
			continue
		}
		env := Envelope{Index: index, OpID: operation.ID(), Event: ev}
		if ev.Terminal() {
			terminal = true
			env.Elapsed = time.Since(start)
		}
		out <- env
	}
	if !terminal {
		if s.cfg.Logger != nil {
			s.cfg.Logger.Logf("sched: operation %s violated the stream contract", operation.ID())
		}
		out <- Envelope{
			Index:   index,
			OpID:    operation.ID(),
			Event:   op.Fail(fmt.Errorf("%w: %s", ErrTruncatedStream, operation.ID())),
			Elapsed: time.Since(start),
		}
	}
}
