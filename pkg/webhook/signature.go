package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderTimestamp = "X-Webhook-Timestamp"
	HeaderID        = "X-Webhook-ID"
)

// Signature is a payload signature and the unix timestamp it was made at.
type Signature struct {
	Value     string
	Timestamp int64
}

// Headers returns the signature as request headers.
func (s Signature) Headers() map[string]string {
	return map[string]string{
		HeaderSignature: s.Value,
		HeaderTimestamp: strconv.FormatInt(s.Timestamp, 10),
	}
}

// SignPayload signs "<timestamp>.<payload>" with HMAC-SHA256.
func SignPayload(secret string, payload []byte) (Signature, error) {
	return signAt(secret, payload, time.Now())
}

func signAt(secret string, payload []byte, at time.Time) (Signature, error) {
	if secret == "" {
		return Signature{}, fmt.Errorf("%w: empty secret", ErrInvalidConfiguration)
	}
	ts := at.Unix()
	return Signature{Value: compute(secret, ts, payload), Timestamp: ts}, nil
}

func compute(secret string, ts int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// ExtractSignatureHeaders reads a Signature from header values.
func ExtractSignatureHeaders(headers map[string]string) (Signature, error) {
	value := headers[HeaderSignature]
	if value == "" {
		return Signature{}, fmt.Errorf("%w: missing %s", ErrInvalidSignature, HeaderSignature)
	}
	ts, err := strconv.ParseInt(headers[HeaderTimestamp], 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: bad %s", ErrInvalidSignature, HeaderTimestamp)
	}
	return Signature{Value: value, Timestamp: ts}, nil
}

// VerifySignature checks sig against payload. A zero tolerance disables the
// timestamp age check.
func VerifySignature(secret string, payload []byte, sig Signature, tolerance time.Duration) error {
	if tolerance > 0 {
		age := time.Since(time.Unix(sig.Timestamp, 0))
		if age < -tolerance || age > tolerance {
			return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
		}
	}
	expected := compute(secret, sig.Timestamp, payload)
	if !hmac.Equal([]byte(expected), []byte(sig.Value)) {
		return ErrInvalidSignature
	}
	return nil
}
