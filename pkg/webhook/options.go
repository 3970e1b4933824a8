package webhook

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout        = 30 * time.Second
	DefaultMaxPayloadSize = 1 << 20
)

// DeliveryResult describes one delivery attempt.
type DeliveryResult struct {
	ID         string
	URL        string
	StatusCode int
	Success    bool
	Duration   time.Duration
	Response   []byte
	Error      error
}

// SenderOption configures a Sender.
type SenderOption func(*Sender)

// WithHTTPClient replaces the underlying resty client.
func WithHTTPClient(c *resty.Client) SenderOption {
	return func(s *Sender) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *slog.Logger) SenderOption {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxPayloadSize limits the encoded payload size in bytes.
func WithMaxPayloadSize(n int) SenderOption {
	return func(s *Sender) {
		s.maxPayloadSize = n
	}
}

type sendOptions struct {
	timeout    time.Duration
	headers    map[string]string
	secret     string
	onDelivery func(DeliveryResult)
}

// SendOption configures a single Send call.
type SendOption func(*sendOptions)

// WithTimeout bounds the request duration.
func WithTimeout(d time.Duration) SendOption {
	return func(o *sendOptions) {
		o.timeout = d
	}
}

// WithHeader adds a request header.
func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		o.headers[key] = value
	}
}

// WithSignature signs the payload with HMAC-SHA256 using secret.
func WithSignature(secret string) SendOption {
	return func(o *sendOptions) {
		o.secret = secret
	}
}

// WithOnDelivery registers a callback invoked after the attempt completes.
func WithOnDelivery(fn func(DeliveryResult)) SendOption {
	return func(o *sendOptions) {
		o.onDelivery = fn
	}
}
