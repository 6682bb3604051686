// Package sched implements the bounded fan-out scheduler at the core of
// tooldispatch.
//
// Given an ordered batch of operations, a [Scheduler] runs up to
// MaxConcurrency of them at once and yields every produced event, tagged
// with its submission index, the moment it becomes available. The merged
// stream therefore reflects completion order, not submission order;
// callers that need request-order results layer
// [github.com/jonwraymond/tooldispatch/dispatch] on top.
//
// # Scheduling
//
// Slots are granted in submission order. When an operation reaches its
// terminal event its slot is released and the next queued operation
// starts immediately, so the concurrency window stays full until the
// batch is exhausted rather than draining in fixed-size waves. No
// fairness beyond FIFO is provided.
//
// # Cancellation
//
// Cancellation is cooperative and flows through the context passed to
// [Scheduler.Run]. Once the context is canceled no further operations
// are started: queued operations yield synthetic canceled envelopes,
// while in-flight operations observe the context themselves and their
// canceled terminal events are drained rather than dropped. The
// scheduler has no timeout of its own; a deadline is just a timer that
// trips the same context.
//
// # Usage
//
//	s := sched.New(sched.WithMaxConcurrency(4))
//	for env := range s.Run(ctx, batch) {
//	    fmt.Printf("[%d] %s: %v\n", env.Index, env.Event.Kind, env.Event.Data)
//	}
//
// The returned channel must be drained; every batch member produces
// exactly one terminal envelope before the stream closes.
package sched
