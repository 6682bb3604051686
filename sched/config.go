package sched

// DefaultMaxConcurrency is the fan-out window used when none is
// configured.
const DefaultMaxConcurrency = 10

// Logger is an optional interface for observability during scheduling.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
// - Ownership: format/args are read-only.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

// Config controls scheduling behavior.
type Config struct {
	// MaxConcurrency bounds how many operations run at once.
	// Values below 1 select DefaultMaxConcurrency.
	MaxConcurrency int

	// Logger receives best-effort diagnostics. Optional.
	Logger Logger
}

// applyDefaults sets default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.MaxConcurrency < 1 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
}

// Option is a functional option for configuring a Scheduler.
type Option func(*Config)

// WithMaxConcurrency sets the fan-out window size.
func WithMaxConcurrency(n int) Option {
	return func(c *Config) {
		c.MaxConcurrency = n
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
