package crawl

import (
	"io"

	"github.com/charmbracelet/log"
)

const (
	// DefaultMaxDepth is the number of levels expanded when none is set.
	DefaultMaxDepth = 3

	// DefaultMaxLinks is the per-article child cap when none is set.
	DefaultMaxLinks = 10
)

// Options configures a [Builder].
type Options struct {
	// MaxDepth is the number of levels to expand. Zero or less selects DefaultMaxDepth.
	MaxDepth int

	// MaxLinks caps the children kept per expansion. Negative selects
	// DefaultMaxLinks; zero keeps no children at all.
	MaxLinks int

	// Logger receives progress and diagnostics. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the defaults of the command line.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth, MaxLinks: DefaultMaxLinks}
}

// WithDefaults returns a copy of o with unset fields replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxLinks < 0 {
		o.MaxLinks = DefaultMaxLinks
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
