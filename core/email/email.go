package email

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// EmailSender delivers a fully prepared HTML message.
// Implementations: DevSender, integration/email/smtp, integration/email/graph,
// integration/email/postmark.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams is the message handed to an EmailSender.
// Recipient fields accept several addresses separated by "," or ";".
type SendEmailParams struct {
	SendTo      string `validate:"required"`
	CC          string
	BCC         string
	Subject     string `validate:"required"`
	BodyHTML    string `validate:"required"`
	Tag         string
	Attachments []Attachment
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks required fields, every recipient address and attachments.
func (p SendEmailParams) Validate() error {
	v := validatorInstance()

	if err := v.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	fields := []struct {
		name  string
		addrs []string
	}{
		{"SendTo", p.To()},
		{"CC", p.Cc()},
		{"BCC", p.Bcc()},
	}
	for _, f := range fields {
		for _, addr := range f.addrs {
			if err := v.Var(addr, "email"); err != nil {
				return fmt.Errorf("%w: %s contains invalid address %q", ErrInvalidParams, f.name, addr)
			}
		}
	}
	if len(p.To()) == 0 {
		return fmt.Errorf("%w: SendTo has no addresses", ErrInvalidParams)
	}

	if strings.ContainsAny(p.Tag, "\r\n") {
		return fmt.Errorf("%w: Tag must be a single line", ErrInvalidParams)
	}

	for i, a := range p.Attachments {
		if a.Name == "" {
			return fmt.Errorf("%w: attachment %d has no name", ErrInvalidParams, i)
		}
	}

	return nil
}

// To returns the parsed primary recipients.
func (p SendEmailParams) To() []string { return SplitAddresses(p.SendTo) }

// Cc returns the parsed carbon-copy recipients.
func (p SendEmailParams) Cc() []string { return SplitAddresses(p.CC) }

// Bcc returns the parsed blind-carbon-copy recipients.
func (p SendEmailParams) Bcc() []string { return SplitAddresses(p.BCC) }

// Recipients returns every envelope recipient, deduplicated, in order.
func (p SendEmailParams) Recipients() []string {
	return lo.Uniq(append(append(p.To(), p.Cc()...), p.Bcc()...))
}

// SplitAddresses splits a "," or ";" separated list and drops blanks.
func SplitAddresses(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	return lo.Compact(lo.Map(parts, func(p string, _ int) string { return strings.TrimSpace(p) }))
}
