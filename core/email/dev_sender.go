package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements EmailSender for local development.
// It writes the HTML body, a JSON metadata file and any attachments to a
// directory instead of delivering anything.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) EmailSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	Timestamp   string   `json:"timestamp"`
	SendTo      []string `json:"send_to"`
	CC          []string `json:"cc,omitempty"`
	BCC         []string `json:"bcc,omitempty"`
	Subject     string   `json:"subject"`
	Tag         string   `json:"tag,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// SendEmail saves the email as <timestamp>_<tag or subject>.html/.json.
// Attachments go to a directory with the same base name.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(params.BodyHTML), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	meta := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.To(),
		CC:        params.Cc(),
		BCC:       params.Bcc(),
		Subject:   params.Subject,
		Tag:       params.Tag,
	}

	if len(params.Attachments) > 0 {
		attDir := filepath.Join(d.dir, base)
		if err := os.MkdirAll(attDir, 0o755); err != nil {
			return fmt.Errorf("%w: failed to create attachment directory: %v", ErrFailedToSendEmail, err)
		}
		for _, a := range params.Attachments {
			name := sanitizeFilename(a.Name)
			if err := os.WriteFile(filepath.Join(attDir, name), a.Content, 0o644); err != nil {
				return fmt.Errorf("%w: failed to write attachment: %v", ErrFailedToSendEmail, err)
			}
			meta.Attachments = append(meta.Attachments, name)
		}
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a lowercase, filesystem-safe name
// of at most 100 characters.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
