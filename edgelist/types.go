package edgelist

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrMalformedLine is returned for a record with fewer than two fields
	// or an empty vertex name.
	ErrMalformedLine = errors.New("edgelist: malformed line")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("edgelist: invalid option supplied")
)

// Option configures Read.
type Option func(*Options)

// Options holds parser parameters.
type Options struct {
	// Separator splits the two endpoint columns.
	Separator rune

	// NameTransform, if set, rewrites every name before it is mapped.
	NameTransform func(string) string

	err error
}

// DefaultOptions returns tab-separated parsing with names used verbatim.
func DefaultOptions() Options {
	return Options{Separator: '\t'}
}

// WithSeparator sets the field delimiter. '#', '\r', '\n' and '"' are rejected.
func WithSeparator(r rune) Option {
	return func(o *Options) {
		switch r {
		case '#', '\r', '\n', '"', 0:
			o.err = fmt.Errorf("%w: unusable separator %q", ErrOptionViolation, r)
			return
		}
		o.Separator = r
	}
}

// WithNameTransform sets a function applied to every vertex name.
func WithNameTransform(fn func(string) string) Option {
	return func(o *Options) { o.NameTransform = fn }
}

// StripSuffix returns a transform that cuts a name at the first sep,
// e.g. StripSuffix("_")("GRMZM2G001_P01") == "GRMZM2G001".
func StripSuffix(sep string) func(string) string {
	return func(s string) string {
		before, _, _ := strings.Cut(s, sep)
		return before
	}
}
