package teams

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/notify/core/logger"
	"github.com/dmitrymomot/notify/core/message"
	"github.com/dmitrymomot/notify/pkg/webhook"
)

// Client posts finalized message bodies to a Teams incoming webhook.
type Client struct {
	config Config
	sender *webhook.Sender
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSender replaces the webhook sender.
func WithSender(s *webhook.Sender) Option {
	return func(c *Client) {
		if s != nil {
			c.sender = s
		}
	}
}

// WithLogger sets the logger for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Teams client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("%w: WebhookURL is required", ErrInvalidConfig)
	}
	if u, err := url.Parse(cfg.WebhookURL); err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: WebhookURL must be an absolute URL", ErrInvalidConfig)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: Timeout must not be negative", ErrInvalidConfig)
	}

	c := &Client{config: cfg, logger: logger.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	if c.sender == nil {
		c.sender = webhook.NewSender(webhook.WithLogger(c.logger))
	}
	return c, nil
}

// MustNewClient creates a Teams client that panics on invalid config.
func MustNewClient(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Send wraps body in an Adaptive Card envelope and posts it once.
func (c *Client) Send(ctx context.Context, body message.Body) error {
	opts := []webhook.SendOption{
		webhook.WithOnDelivery(func(r webhook.DeliveryResult) {
			attrs := []any{
				logger.Provider("teams"),
				logger.Group("delivery",
					logger.Key("id", r.ID),
					logger.StatusCode(r.StatusCode),
					logger.Duration(r.Duration),
				),
				logger.Count("blocks", len(body)),
			}
			if !r.Success {
				c.logger.WarnContext(ctx, "teams message rejected", append(attrs, logger.Error(r.Error))...)
				return
			}
			c.logger.DebugContext(ctx, "teams message delivered", attrs...)
		}),
	}
	if c.config.Timeout > 0 {
		opts = append(opts, webhook.WithTimeout(c.config.Timeout))
	}

	if err := c.sender.Send(ctx, c.config.WebhookURL, message.NewEnvelope(body), opts...); err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	return nil
}
