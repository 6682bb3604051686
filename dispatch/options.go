package dispatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/tooldispatch/op"
	"github.com/jonwraymond/tooldispatch/sched"
)

// Errors returned by Options validation and batch checks.
var (
	// ErrInvalidConcurrency indicates a negative MaxConcurrency.
	ErrInvalidConcurrency = errors.New("dispatch: MaxConcurrency must not be negative")

	// ErrNilOperation indicates a batch containing a nil operation.
	ErrNilOperation = errors.New("dispatch: batch contains a nil operation")
)

// Options configures a Dispatcher.
type Options struct {
	// MaxConcurrency bounds the fan-out window for read-only batches.
	// Zero selects sched.DefaultMaxConcurrency.
	MaxConcurrency int

	// Timeout bounds a whole batch invocation. It is layered on top of
	// cancellation: the deadline trips the same context signal the
	// operations already honor. Zero disables it.
	Timeout time.Duration

	// OnEvent observes every envelope in completion order, progress and
	// terminal alike. Optional. It is called from the dispatch drain
	// loop, so it must not block.
	OnEvent func(sched.Envelope)

	// Logger receives best-effort diagnostics. Optional.
	Logger sched.Logger
}

// validate checks that the options are usable.
func (o *Options) validate() error {
	if o.MaxConcurrency < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, o.MaxConcurrency)
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.MaxConcurrency == 0 {
		o.MaxConcurrency = sched.DefaultMaxConcurrency
	}
}

// Mode identifies the execution strategy chosen for a batch.
type Mode string

const (
	// ModeConcurrent fans the batch out through the bounded scheduler.
	ModeConcurrent Mode = "concurrent"

	// ModeSerial runs operations one at a time in submission order.
	ModeSerial Mode = "serial"
)

// Classify selects the execution strategy for a batch: concurrent only
// when every operation reports ReadOnly, serial as soon as one does not.
// The capability flags are trusted as declared; an operation that claims
// to be read-only but mutates is a caller contract violation this
// package cannot detect.
func Classify(batch []op.Operation) Mode {
	for _, o := range batch {
		if !o.ReadOnly() {
			return ModeSerial
		}
	}
	return ModeConcurrent
}
