package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/tooldispatch/op"
	"github.com/jonwraymond/tooldispatch/sched"
)

// Dispatcher is the entry point for batch execution: classify, run,
// reorder.
//
// Contract:
// - Concurrency: safe for concurrent use; each Dispatch owns its own state.
// - Context: a canceled context yields canceled outcomes, not a dropped batch.
// - Errors: per-operation failures are data in the outcome slice; Dispatch
//   returns an error only for invalid input.
// - Ownership: the batch slice is read-only; the outcome slice is caller-owned.
type Dispatcher struct {
	sched *sched.Scheduler
	opts  Options
}

// New creates a Dispatcher with the given options.
func New(opts Options) (*Dispatcher, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	s := sched.New(
		sched.WithMaxConcurrency(opts.MaxConcurrency),
		sched.WithLogger(opts.Logger),
	)
	return &Dispatcher{sched: s, opts: opts}, nil
}

// Dispatch executes the batch and returns one outcome per operation, in
// submission order regardless of completion order. An empty batch
// returns an empty result with nothing started.
func (d *Dispatcher) Dispatch(ctx context.Context, batch []op.Operation) ([]op.Outcome, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	for _, o := range batch {
		if o == nil {
			return nil, ErrNilOperation
		}
	}

	if d.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.Timeout)
		defer cancel()
	}

	mode := Classify(batch)
	if d.opts.Logger != nil {
		d.opts.Logger.Logf("dispatch: %d operations, %s mode", len(batch), mode)
	}

	if mode == ModeConcurrent {
		return d.runConcurrent(ctx, batch), nil
	}
	return d.runSerial(ctx, batch), nil
}

// runConcurrent drains the scheduler's completion-order stream and
// places each terminal outcome at its submission index.
func (d *Dispatcher) runConcurrent(ctx context.Context, batch []op.Operation) []op.Outcome {
	outcomes := make([]op.Outcome, len(batch))
	for env := range d.sched.Run(ctx, batch) {
		d.observe(env)
		if env.Event.Terminal() {
			outcomes[env.Index] = toOutcome(env)
		}
	}
	return outcomes
}

// runSerial executes operations one at a time in submission order,
// waiting for each terminal event before starting the next. Once the
// context is canceled the remaining operations are reported canceled
// without being started.
func (d *Dispatcher) runSerial(ctx context.Context, batch []op.Operation) []op.Outcome {
	outcomes := make([]op.Outcome, len(batch))
	for i, operation := range batch {
		if err := ctx.Err(); err != nil {
			env := sched.Envelope{Index: i, OpID: operation.ID(), Event: op.Canceled(err)}
			d.observe(env)
			outcomes[i] = toOutcome(env)
			continue
		}

		start := time.Now()
		terminal := false
		for ev := range operation.Run(ctx) {
			if terminal {
				continue
			}
			env := sched.Envelope{Index: i, OpID: operation.ID(), Event: ev}
			if ev.Terminal() {
				terminal = true
				env.Elapsed = time.Since(start)
				outcomes[i] = toOutcome(env)
			}
			d.observe(env)
		}
		if !terminal {
			env := sched.Envelope{
				Index:   i,
				OpID:    operation.ID(),
				Event:   op.Fail(fmt.Errorf("%w: %s", sched.ErrTruncatedStream, operation.ID())),
				Elapsed: time.Since(start),
			}
			d.observe(env)
			outcomes[i] = toOutcome(env)
		}
	}
	return outcomes
}

// observe forwards an envelope to the configured event observer.
func (d *Dispatcher) observe(env sched.Envelope) {
	if d.opts.OnEvent != nil {
		d.opts.OnEvent(env)
	}
}

// toOutcome converts a terminal envelope into a caller-facing outcome.
func toOutcome(env sched.Envelope) op.Outcome {
	out := op.Outcome{OpID: env.OpID, Duration: env.Elapsed}
	switch env.Event.Kind {
	case op.EventDone:
		out.Value = env.Event.Data
	case op.EventCanceled:
		out.Canceled = true
		out.Err = env.Event.Err
	default:
		out.Err = env.Event.Err
	}
	return out
}
