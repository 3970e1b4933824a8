package table

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultLimit is the maximum number of rows ever rendered into a message.
const DefaultLimit = 30

// Policy decides what happens when a dataset exceeds the row limit.
type Policy int

const (
	// Truncate renders the first limit rows and emits a warning.
	Truncate Policy = iota
	// Reject fails with ErrDataFrameTooLarge.
	Reject
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// UnmarshalText allows a Policy to be loaded from configuration.
func (p *Policy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "truncate":
		*p = Truncate
	case "reject":
		*p = Reject
	default:
		return fmt.Errorf("table: unknown policy %q", text)
	}
	return nil
}

// Truncation describes a dataset that was cut down to the row limit.
type Truncation struct {
	Name  string
	Rows  int
	Limit int
}

type options struct {
	name       string
	limit      int
	policy     Policy
	logger     *slog.Logger
	onTruncate func(Truncation)
}

// Option configures Render.
type Option func(*options)

// WithLimit overrides DefaultLimit. Non-positive limits make Render fail
// with ErrInvalidLimit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithPolicy selects the behavior for oversized datasets.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithName labels the dataset in truncation warnings.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger logs truncation warnings to log.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithOnTruncate registers a callback invoked once per truncated render.
func WithOnTruncate(fn func(Truncation)) Option {
	return func(o *options) {
		o.onTruncate = fn
	}
}
