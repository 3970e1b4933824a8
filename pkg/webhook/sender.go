package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrymomot/notify/core/logger"
)

// Sender posts JSON payloads to webhook endpoints. Each Send is a single
// attempt. Safe for concurrent use.
type Sender struct {
	client         *resty.Client
	logger         *slog.Logger
	maxPayloadSize int
}

// NewSender creates a Sender.
func NewSender(opts ...SenderOption) *Sender {
	s := &Sender{
		client:         resty.New(),
		logger:         logger.Discard(),
		maxPayloadSize: DefaultMaxPayloadSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send encodes payload and posts it to endpoint. []byte and json.RawMessage
// payloads are sent as-is; anything else is JSON encoded.
func (s *Sender) Send(ctx context.Context, endpoint string, payload any, opts ...SendOption) error {
	o := sendOptions{timeout: DefaultTimeout, headers: map[string]string{}}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateURL(endpoint); err != nil {
		return err
	}
	body, err := s.encode(payload)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	req := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader(HeaderID, id).
		SetHeaders(o.headers).
		SetBody(body)

	if o.secret != "" {
		sig, err := SignPayload(o.secret, body)
		if err != nil {
			return err
		}
		req.SetHeaders(sig.Headers())
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := req.SetContext(ctx).Post(endpoint)
	result := DeliveryResult{ID: id, URL: endpoint, Duration: time.Since(start)}
	if resp != nil {
		result.StatusCode = resp.StatusCode()
		result.Response = resp.Body()
	}
	result.Error = classify(resp, err)
	result.Success = result.Error == nil

	if o.onDelivery != nil {
		o.onDelivery(result)
	}

	if result.Error != nil {
		s.logger.WarnContext(ctx, "webhook delivery failed",
			logger.Key("delivery_id", id),
			logger.URL(origin(endpoint)),
			logger.StatusCode(result.StatusCode),
			logger.Duration(result.Duration),
			logger.Error(result.Error),
		)
		return errors.Join(ErrWebhookDeliveryFailed, result.Error)
	}

	s.logger.DebugContext(ctx, "webhook delivered",
		logger.Key("delivery_id", id),
		logger.URL(origin(endpoint)),
		logger.StatusCode(result.StatusCode),
		logger.Duration(result.Duration),
	)
	return nil
}

func (s *Sender) encode(payload any) ([]byte, error) {
	var body []byte
	switch p := payload.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil payload", ErrInvalidPayload)
	case []byte:
		body = p
	case json.RawMessage:
		body = p
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		body = b
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}
	if s.maxPayloadSize > 0 && len(body) > s.maxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrInvalidPayload, len(body), s.maxPayloadSize)
	}
	return body, nil
}

func validateURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

// classify maps a transport error or HTTP status to a package error.
func classify(resp *resty.Response, err error) error {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrTemporaryFailure, err)
	}

	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrTemporaryFailure, code)
	case code >= 400 && code < 500:
		return fmt.Errorf("%w: status %d: %s", ErrPermanentFailure, code, truncate(resp.String(), 256))
	default:
		return fmt.Errorf("%w: status %d", ErrTemporaryFailure, code)
	}
}

// origin strips the path and query, which often carry the webhook secret.
func origin(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
