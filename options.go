package notify

import (
	"log/slog"

	"github.com/dmitrymomot/notify/core/email"
	"github.com/dmitrymomot/notify/core/logger"
	"github.com/dmitrymomot/notify/core/table"
)

type options struct {
	logger *slog.Logger
	limit  int
	policy table.Policy
	loader *email.Loader
}

func newOptions(opts []Option) options {
	o := options{
		logger: logger.Discard(),
		limit:  table.DefaultLimit,
		policy: table.Truncate,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) tableOptions(name string) []table.Option {
	return []table.Option{
		table.WithName(name),
		table.WithLimit(o.limit),
		table.WithPolicy(o.policy),
		table.WithLogger(o.logger),
	}
}

// Option configures a notifier.
type Option func(*options)

// WithLogger sets the logger used for delivery and truncation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRenderLimit sets the maximum number of table rows rendered.
func WithRenderLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithExceedPolicy selects what happens when a table exceeds the render limit.
func WithExceedPolicy(p table.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithAttachmentLoader sets the loader used for MailMessage.Files.
func WithAttachmentLoader(l *email.Loader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}
