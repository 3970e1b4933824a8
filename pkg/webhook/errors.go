package webhook

import "errors"

var (
	ErrInvalidURL            = errors.New("invalid webhook url")
	ErrInvalidPayload        = errors.New("invalid webhook payload")
	ErrTimeout               = errors.New("webhook request timed out")
	ErrPermanentFailure      = errors.New("webhook permanently rejected")
	ErrTemporaryFailure      = errors.New("webhook temporarily failed")
	ErrWebhookDeliveryFailed = errors.New("webhook delivery failed")
	ErrInvalidConfiguration  = errors.New("invalid webhook configuration")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
)
