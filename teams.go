package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/notify/core/dataset"
	"github.com/dmitrymomot/notify/core/logger"
	"github.com/dmitrymomot/notify/core/message"
	"github.com/dmitrymomot/notify/core/report"
)

// ChatSender delivers a finalized message body, e.g. *teams.Client.
type ChatSender interface {
	Send(ctx context.Context, body message.Body) error
}

// TeamsMessage is the content of a basic chat notification.
// Only Title is required.
type TeamsMessage struct {
	Title    string
	Subtitle string
	Warning  string
	// Text may contain several paragraphs separated by "<br>".
	Text    string
	Reports []report.Item
	Table   *dataset.Dataset
	// TableName labels Table in truncation warnings.
	TableName string
	Buttons   []message.Button
}

// Teams composes chat notifications and hands them to a ChatSender.
type Teams struct {
	sender ChatSender
	opts   options
}

// NewTeams creates a chat notifier.
func NewTeams(sender ChatSender, opts ...Option) *Teams {
	return &Teams{sender: sender, opts: newOptions(opts)}
}

// Compose builds the message body in a fixed order: header, warning, text,
// reports, table, buttons.
func (t *Teams) Compose(msg TeamsMessage) (message.Body, error) {
	c := message.NewComposer()
	if err := c.SetHeader(msg.Title, msg.Subtitle); err != nil {
		return nil, err
	}
	if err := c.AddWarning(msg.Warning); err != nil {
		return nil, err
	}
	if err := c.AddText(msg.Text); err != nil {
		return nil, err
	}
	if len(msg.Reports) > 0 {
		if err := c.AddReport(msg.Reports...); err != nil {
			return nil, err
		}
	}
	if msg.Table != nil {
		if err := c.AddTable(msg.Table, t.opts.tableOptions(msg.TableName)...); err != nil {
			return nil, err
		}
	}
	if len(msg.Buttons) > 0 {
		if err := c.AddButtons(msg.Buttons...); err != nil {
			return nil, err
		}
	}
	return c.Finalize()
}

// BasicMessage composes msg and sends it.
func (t *Teams) BasicMessage(ctx context.Context, msg TeamsMessage) error {
	body, err := t.Compose(msg)
	if err != nil {
		return fmt.Errorf("compose teams message: %w", err)
	}
	return t.Send(ctx, body)
}

// Send delivers an already finalized body, e.g. one built with a Composer
// and extended with InsertRaw.
func (t *Teams) Send(ctx context.Context, body message.Body) error {
	start := time.Now()
	if err := t.sender.Send(ctx, body); err != nil {
		t.opts.logger.ErrorContext(ctx, "teams message not sent",
			logger.Provider("teams"),
			logger.Action("send"),
			logger.Count("blocks", len(body)),
			logger.Elapsed(start),
			logger.Error(err),
		)
		return err
	}
	t.opts.logger.InfoContext(ctx, "teams message sent",
		logger.Provider("teams"),
		logger.Action("send"),
		logger.Count("blocks", len(body)),
		logger.Elapsed(start),
	)
	return nil
}
