package op

import "time"

// Outcome is the terminal result of one operation within a batch.
type Outcome struct {
	// OpID identifies the originating operation.
	OpID string

	// Value is the operation's result on success.
	Value any

	// Err is non-nil if the operation failed or was canceled.
	Err error

	// Canceled reports whether the operation ended due to cancellation
	// rather than its own failure.
	Canceled bool

	// Duration is how long the operation ran. Zero for operations that
	// were canceled before starting.
	Duration time.Duration
}

// OK returns true if the operation completed successfully.
func (o Outcome) OK() bool {
	return o.Err == nil && !o.Canceled
}
