// Package dispatch routes batches of operations to the right execution
// strategy and restores request order in the results.
//
// A batch runs concurrently through the bounded scheduler only when
// every operation in it declares itself read-only. A single mutating
// operation serializes the whole batch: mutating operations may have
// ordering dependencies or conflict with each other (two edits to the
// same file, say), and serializing the batch is cheaper and easier to
// reason about than fine-grained conflict detection.
//
// Whichever path runs, [Dispatcher.Dispatch] returns one outcome per
// input operation, reordered to match the submission order regardless of
// completion order. Individual failures and cancellations are reported
// in their outcome slot, never by aborting the whole call, so a batch
// where three of four reads succeed still delivers the three good
// results.
//
// # Basic Usage
//
//	d, err := dispatch.New(dispatch.Options{MaxConcurrency: 4})
//	if err != nil {
//	    return err
//	}
//	outcomes, err := d.Dispatch(ctx, []op.Operation{
//	    op.NewFunc("read-a", true, readA),
//	    op.NewFunc("read-b", true, readB),
//	})
//
// # Streaming progress
//
// Callers that render incremental output set Options.OnEvent, which
// observes every envelope in completion order while the final outcome
// slice still arrives in request order:
//
//	d, _ := dispatch.New(dispatch.Options{
//	    OnEvent: func(env sched.Envelope) {
//	        fmt.Printf("[%s] %v\n", env.OpID, env.Event.Data)
//	    },
//	})
//
// # Cancellation and timeouts
//
// Canceling the context ends the batch cooperatively: operations that
// already finished keep their outcomes, and every active or queued
// operation is reported canceled; none are silently missing.
// Options.Timeout is the same mechanism on a timer.
package dispatch
