package mailgun

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/dmitrymomot/notify/core/email"
)

const euAPIBase = "https://api.eu.mailgun.net/v3"

type Client struct {
	client *mailgun.MailgunImpl
	config Config
}

// New creates a Mailgun-backed email sender.
func New(cfg Config) (email.EmailSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", email.ErrInvalidConfig)
	}
	if cfg.Domain == "" {
		return nil, fmt.Errorf("%w: Domain is required", email.ErrInvalidConfig)
	}
	if cfg.Region != "" && cfg.Region != "us" && cfg.Region != "eu" {
		return nil, fmt.Errorf("%w: Region must be us or eu", email.ErrInvalidConfig)
	}
	if !isValidEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.SupportEmail != "" && !isValidEmail(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", email.ErrInvalidConfig)
	}

	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	switch {
	case cfg.BaseURL != "":
		mg.SetAPIBase(cfg.BaseURL)
	case cfg.Region == "eu":
		mg.SetAPIBase(euAPIBase)
	}

	return &Client{client: mg, config: cfg}, nil
}

// MustNewClient creates a Mailgun client that panics on invalid config.
func MustNewClient(cfg Config) email.EmailSender {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender using the Mailgun messages API.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	m := c.client.NewMessage(c.config.SenderEmail, params.Subject, "", params.To()...)
	m.SetHtml(params.BodyHTML)
	for _, cc := range params.Cc() {
		m.AddCC(cc)
	}
	for _, bcc := range params.Bcc() {
		m.AddBCC(bcc)
	}
	if c.config.SupportEmail != "" {
		m.SetReplyTo(c.config.SupportEmail)
	}
	if params.Tag != "" {
		if err := m.AddTag(params.Tag); err != nil {
			return errors.Join(email.ErrFailedToSendEmail, err)
		}
	}
	for _, a := range params.Attachments {
		m.AddBufferAttachment(a.Name, a.Content)
	}

	if _, _, err := c.client.Send(ctx, m); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	return nil
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail checks if the provided string is a valid email address.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
