package op

// EventKind classifies an item produced by an operation's stream.
type EventKind string

// Event kinds produced during operation execution.
const (
	// EventProgress is an intermediate item; more items follow.
	EventProgress EventKind = "progress"

	// EventDone is the terminal item of a successful operation.
	EventDone EventKind = "done"

	// EventError is the terminal item of a failed operation.
	EventError EventKind = "error"

	// EventCanceled is the terminal item of an operation that observed
	// cancellation before producing a result.
	EventCanceled EventKind = "canceled"
)

// Event is a single item pulled from an operation's stream.
type Event struct {
	// Kind classifies the item.
	Kind EventKind

	// Data carries the payload for progress and done events.
	Data any

	// Err carries the failure for error and canceled events.
	Err error
}

// Terminal reports whether the event ends the operation's stream.
func (e Event) Terminal() bool {
	return e.Kind != EventProgress
}

// Progress builds an intermediate progress event.
func Progress(data any) Event {
	return Event{Kind: EventProgress, Data: data}
}

// Done builds a successful terminal event.
func Done(data any) Event {
	return Event{Kind: EventDone, Data: data}
}

// Fail builds a failed terminal event.
func Fail(err error) Event {
	return Event{Kind: EventError, Err: err}
}

// Canceled builds a canceled terminal event.
func Canceled(err error) Event {
	return Event{Kind: EventCanceled, Err: err}
}
