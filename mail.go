package notify

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/dmitrymomot/notify/core/dataset"
	"github.com/dmitrymomot/notify/core/email"
	"github.com/dmitrymomot/notify/core/email/templates"
	"github.com/dmitrymomot/notify/core/logger"
	"github.com/dmitrymomot/notify/core/table"
)

// ErrNoAttachmentLoader is returned when MailMessage.Files is set but the
// notifier has no loader.
var ErrNoAttachmentLoader = errors.New("no attachment loader configured")

// MailMessage is an HTML e-mail with an optional embedded table.
// Recipient fields accept several addresses separated by "," or ";".
type MailMessage struct {
	To      string
	CC      string
	BCC     string
	Subject string
	// Message is inserted into the document body as raw HTML, or converted
	// from Markdown first when Markdown is set.
	Message  string
	Markdown bool
	Table    *dataset.Dataset
	// TableName labels Table in truncation warnings.
	TableName   string
	Tag         string
	Attachments []email.Attachment
	// Files maps attachment names to locations read with the attachment loader.
	Files map[string]string
}

// Mail renders mail documents and hands them to an email.EmailSender.
type Mail struct {
	sender email.EmailSender
	opts   options
}

// NewMail creates a mail notifier.
func NewMail(sender email.EmailSender, opts ...Option) *Mail {
	return &Mail{sender: sender, opts: newOptions(opts)}
}

// Render returns the full HTML document for msg.
func (m *Mail) Render(ctx context.Context, msg MailMessage) (string, error) {
	body := msg.Message
	if msg.Markdown {
		html, err := templates.Markdown(body)
		if err != nil {
			return "", err
		}
		body = html
	}

	var rendered *table.Rendered
	if msg.Table != nil {
		r, err := table.Render(msg.Table, m.opts.tableOptions(msg.TableName)...)
		if err != nil {
			return "", err
		}
		rendered = r
	}
	return templates.Render(ctx, templates.Document(msg.Subject, body, rendered))
}

// Send renders msg, loads its files and sends it.
func (m *Mail) Send(ctx context.Context, msg MailMessage) error {
	start := time.Now()

	body, err := m.Render(ctx, msg)
	if err != nil {
		return fmt.Errorf("render mail: %w", err)
	}

	attachments, err := m.attachments(ctx, msg)
	if err != nil {
		return err
	}

	params := email.SendEmailParams{
		SendTo:      msg.To,
		CC:          msg.CC,
		BCC:         msg.BCC,
		Subject:     msg.Subject,
		BodyHTML:    body,
		Tag:         msg.Tag,
		Attachments: attachments,
	}
	if err := m.sender.SendEmail(ctx, params); err != nil {
		m.opts.logger.ErrorContext(ctx, "mail not sent",
			logger.Action("send"),
			logger.Recipients(len(params.Recipients())),
			logger.Elapsed(start),
			logger.Error(err),
		)
		return err
	}

	m.opts.logger.InfoContext(ctx, "mail sent",
		logger.Action("send"),
		logger.Recipients(len(params.Recipients())),
		logger.Count("attachments", len(attachments)),
		logger.Elapsed(start),
	)
	return nil
}

func (m *Mail) attachments(ctx context.Context, msg MailMessage) ([]email.Attachment, error) {
	if len(msg.Files) == 0 {
		return msg.Attachments, nil
	}
	if m.opts.loader == nil {
		return nil, ErrNoAttachmentLoader
	}

	names := lo.Keys(msg.Files)
	slices.Sort(names)
	loaded, err := m.opts.loader.LoadAll(ctx, names, msg.Files)
	if err != nil {
		return nil, err
	}
	return append(slices.Clone(msg.Attachments), loaded...), nil
}
