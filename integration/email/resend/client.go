package resend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/samber/lo"

	"github.com/dmitrymomot/notify/core/email"
)

type Client struct {
	client *resend.Client
	config Config
}

// New creates a Resend-backed email sender.
func New(cfg Config) (email.EmailSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", email.ErrInvalidConfig)
	}
	if !isValidEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.SupportEmail != "" && !isValidEmail(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", email.ErrInvalidConfig)
	}

	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("%w: BaseURL: %v", email.ErrInvalidConfig, err)
		}
		client.BaseURL = base
	}

	return &Client{client: client, config: cfg}, nil
}

// MustNewClient creates a Resend client that panics on invalid config.
func MustNewClient(cfg Config) email.EmailSender {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender using the Resend emails API.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    c.config.SenderEmail,
		To:      params.To(),
		Cc:      params.Cc(),
		Bcc:     params.Bcc(),
		ReplyTo: c.config.SupportEmail,
		Subject: params.Subject,
		Html:    params.BodyHTML,
		Attachments: lo.Map(params.Attachments, func(a email.Attachment, _ int) *resend.Attachment {
			return &resend.Attachment{
				Filename:    a.Name,
				Content:     a.Content,
				ContentType: a.ContentType,
			}
		}),
	}
	if params.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: tagValue(params.Tag)}}
	}

	if _, err := c.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	return nil
}

var tagRegex = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// tagValue keeps only the characters Resend accepts in tag values.
func tagValue(tag string) string {
	return tagRegex.ReplaceAllString(tag, "_")
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail checks if the provided string is a valid email address.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
