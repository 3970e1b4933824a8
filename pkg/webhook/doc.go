// Package webhook delivers JSON payloads to HTTP webhook endpoints.
//
// Each Send is a single POST: there are no retries. Failures are classified
// so callers can decide what to do next.
//
//	sender := webhook.NewSender(webhook.WithLogger(log))
//
//	err := sender.Send(ctx, "https://hooks.example.com/in", event,
//		webhook.WithTimeout(10*time.Second),
//		webhook.WithSignature(secret),
//	)
//	if errors.Is(err, webhook.ErrPermanentFailure) {
//		// 4xx, the endpoint rejected the payload
//	}
//
// # Signatures
//
// WithSignature adds X-Webhook-Signature and X-Webhook-Timestamp headers
// computed as HMAC-SHA256 over "<timestamp>.<payload>". Receivers verify with:
//
//	sig, err := webhook.ExtractSignatureHeaders(map[string]string{
//		webhook.HeaderSignature: r.Header.Get(webhook.HeaderSignature),
//		webhook.HeaderTimestamp: r.Header.Get(webhook.HeaderTimestamp),
//	})
//	err = webhook.VerifySignature(secret, body, sig, 5*time.Minute)
//
// # Errors
//
//   - ErrInvalidURL: URL is malformed or not http(s)
//   - ErrInvalidPayload: payload is nil, empty, unencodable or too large
//   - ErrTimeout: the request exceeded its timeout
//   - ErrPermanentFailure: 4xx status other than 408 and 429
//   - ErrTemporaryFailure: network error, 408, 429 or 5xx
//   - ErrWebhookDeliveryFailed: wraps every delivery failure
//
// Every request carries an X-Webhook-ID header with a fresh UUID, which is
// also reported in DeliveryResult.
package webhook
