package toolset

import (
	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
)

// Config controls optional discovery integration for a Set.
type Config struct {
	// Index receives a mirror of every registered tool for search.
	// Optional.
	Index index.Index

	// Docs provides tool documentation for Describe. Optional.
	Docs tooldoc.Store
}

// Option is a functional option for configuring a Set.
type Option func(*Config)

// WithIndex sets the discovery index registered tools are mirrored into.
func WithIndex(idx index.Index) Option {
	return func(c *Config) {
		c.Index = idx
	}
}

// WithDocs sets the documentation store backing Describe.
func WithDocs(docs tooldoc.Store) Option {
	return func(c *Config) {
		c.Docs = docs
	}
}
