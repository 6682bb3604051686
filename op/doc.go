// Package op defines the operation contract consumed by the tooldispatch
// scheduler and dispatch policy.
//
// An [Operation] is a unit of requested work that declares up front
// whether it is free of side effects, and produces its results as a lazy
// event stream: zero or more progress events followed by exactly one
// terminal event (done, error, or canceled). Errors and cancellations
// travel through the stream as data, so a consumer always receives one
// terminal item per operation and never loses sibling results to a
// single failure.
//
// # Constructing operations
//
// Most callers wrap plain functions:
//
//	read := op.NewFunc("read-config", true, func(ctx context.Context) (any, error) {
//	    return os.ReadFile("config.json")
//	})
//
// Operations that report intermediate progress use [NewStreaming]:
//
//	scan := op.NewStreaming("scan", true, func(ctx context.Context, emit func(any)) (any, error) {
//	    for _, f := range files {
//	        emit("scanning " + f)
//	    }
//	    return len(files), nil
//	})
//
// # Cancellation
//
// The context passed to Run is shared by the whole batch. Operations
// check it between items and on blocking steps; when it is canceled they
// stop and surface a canceled terminal event rather than a normal
// result. Returning context.Canceled or context.DeadlineExceeded from an
// operation body is classified as cancellation, not failure.
//
// # Integration
//
// The package is consumed by:
//
//   - [github.com/jonwraymond/tooldispatch/sched] for bounded concurrent execution
//   - [github.com/jonwraymond/tooldispatch/dispatch] for batch routing and reordering
//   - [github.com/jonwraymond/tooldispatch/toolset] for building operations from tool calls
package op
