package notify_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notify"
	"github.com/dmitrymomot/notify/core/dataset"
	"github.com/dmitrymomot/notify/core/email"
	"github.com/dmitrymomot/notify/core/logger"
	"github.com/dmitrymomot/notify/core/message"
	"github.com/dmitrymomot/notify/core/report"
	"github.com/dmitrymomot/notify/core/table"
)

type chatRecorder struct {
	bodies []message.Body
	err    error
}

func (r *chatRecorder) Send(_ context.Context, body message.Body) error {
	r.bodies = append(r.bodies, body)
	return r.err
}

type mailRecorder struct {
	sent []email.SendEmailParams
	err  error
}

func (r *mailRecorder) SendEmail(_ context.Context, p email.SendEmailParams) error {
	r.sent = append(r.sent, p)
	return r.err
}

func numbers(t *testing.T, n int) *dataset.Dataset {
	t.Helper()
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{i, fmt.Sprintf("row-%d", i)}
	}
	ds, err := dataset.New([]string{"id", "name"}, rows...)
	require.NoError(t, err)
	return ds
}

func TestTeams_BasicMessage(t *testing.T) {
	t.Parallel()

	rec := &chatRecorder{}
	n := notify.NewTeams(rec)

	err := n.BasicMessage(context.Background(), notify.TeamsMessage{
		Title:   "Import",
		Warning: "2 rows skipped",
		Text:    "first<br>second",
		Reports: []report.Item{{Name: "orders", Source: numbers(t, 3)}},
		Table:   numbers(t, 3),
		Buttons: []message.Button{{Label: "Open", URL: "https://example.com"}},
	})
	require.NoError(t, err)
	require.Len(t, rec.bodies, 1)

	assert.Equal(t, []message.Kind{
		message.KindHeader,
		message.KindWarning,
		message.KindText,
		message.KindText,
		message.KindReport,
		message.KindTable,
		message.KindButtons,
	}, rec.bodies[0].Kinds())
}

func TestTeams_BasicMessage_MinimalBody(t *testing.T) {
	t.Parallel()

	rec := &chatRecorder{}
	require.NoError(t, notify.NewTeams(rec).BasicMessage(context.Background(), notify.TeamsMessage{Title: "Ping"}))
	assert.Equal(t, []message.Kind{message.KindHeader}, rec.bodies[0].Kinds())
}

func TestTeams_BasicMessage_Truncates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := &chatRecorder{}
	n := notify.NewTeams(rec,
		notify.WithRenderLimit(5),
		notify.WithLogger(logger.New(logger.WithOutput(&buf))),
	)

	require.NoError(t, n.BasicMessage(context.Background(), notify.TeamsMessage{Title: "Big", Table: numbers(t, 12), TableName: "numbers"}))

	body := rec.bodies[0]
	require.Len(t, body, 2)
	tbl, ok := body[1].(message.Table)
	require.True(t, ok)
	assert.Len(t, tbl.Rendered.Rows, 5)
	assert.True(t, tbl.Rendered.Truncated)
	assert.Contains(t, buf.String(), "only first 5 records will be added")
	assert.Contains(t, buf.String(), "dataset=numbers")
	assert.Contains(t, buf.String(), "action=send")
}

func TestTeams_BasicMessage_Reject(t *testing.T) {
	t.Parallel()

	rec := &chatRecorder{}
	n := notify.NewTeams(rec, notify.WithExceedPolicy(table.Reject))

	err := n.BasicMessage(context.Background(), notify.TeamsMessage{Title: "Big", Table: numbers(t, table.DefaultLimit+1)})
	require.ErrorIs(t, err, table.ErrDataFrameTooLarge)
	assert.Empty(t, rec.bodies, "nothing is sent")
}

func TestTeams_BasicMessage_Errors(t *testing.T) {
	t.Parallel()

	rec := &chatRecorder{}
	err := notify.NewTeams(rec).BasicMessage(context.Background(), notify.TeamsMessage{})
	require.ErrorIs(t, err, message.ErrInvalidBlock)
	assert.Empty(t, rec.bodies)

	sendErr := errors.New("boom")
	err = notify.NewTeams(&chatRecorder{err: sendErr}).BasicMessage(context.Background(), notify.TeamsMessage{Title: "x"})
	assert.ErrorIs(t, err, sendErr)
}

func TestTeams_Send_PrecomposedBody(t *testing.T) {
	t.Parallel()

	c := message.NewComposer()
	require.NoError(t, c.SetHeader("Custom", ""))
	require.NoError(t, c.AddText("a"))
	require.NoError(t, c.InsertRaw(1, message.Raw{"type": "TextBlock", "text": "inserted"}))
	body, err := c.Finalize()
	require.NoError(t, err)

	rec := &chatRecorder{}
	require.NoError(t, notify.NewTeams(rec).Send(context.Background(), body))
	assert.Equal(t, []message.Kind{message.KindHeader, message.KindRaw, message.KindText}, rec.bodies[0].Kinds())
}

func TestMail_Send(t *testing.T) {
	t.Parallel()

	rec := &mailRecorder{}
	m := notify.NewMail(rec)

	err := m.Send(context.Background(), notify.MailMessage{
		To:      "a@example.com;b@example.com",
		CC:      "c@example.com",
		Subject: "Daily <report>",
		Message: "<p>Hello</p>",
		Table:   numbers(t, 2),
		Tag:     "daily",
	})
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)

	p := rec.sent[0]
	assert.Equal(t, "a@example.com;b@example.com", p.SendTo)
	assert.Equal(t, "c@example.com", p.CC)
	assert.Equal(t, "daily", p.Tag)
	assert.Contains(t, p.BodyHTML, "<title>Daily &lt;report&gt;</title>")
	assert.Contains(t, p.BodyHTML, "<p>Hello</p>")
	assert.Contains(t, p.BodyHTML, `class="styled-table"`)
	assert.Contains(t, p.BodyHTML, "row-1")
}

func TestMail_Send_WithoutTable(t *testing.T) {
	t.Parallel()

	rec := &mailRecorder{}
	require.NoError(t, notify.NewMail(rec).Send(context.Background(), notify.MailMessage{
		To: "a@example.com", Subject: "s", Message: "<p>m</p>",
	}))
	assert.NotContains(t, rec.sent[0].BodyHTML, "<table")
}

func TestMail_Render_Markdown(t *testing.T) {
	t.Parallel()

	html, err := notify.NewMail(&mailRecorder{}).Render(context.Background(), notify.MailMessage{
		Subject:  "s",
		Message:  "Import **done**",
		Markdown: true,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>done</strong>")
}

func TestMail_Send_Reject(t *testing.T) {
	t.Parallel()

	rec := &mailRecorder{}
	m := notify.NewMail(rec, notify.WithRenderLimit(3), notify.WithExceedPolicy(table.Reject))

	err := m.Send(context.Background(), notify.MailMessage{To: "a@example.com", Subject: "s", Table: numbers(t, 4)})
	require.ErrorIs(t, err, table.ErrDataFrameTooLarge)
	assert.Empty(t, rec.sent)
}

func TestMail_Send_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o600))

	inline := email.Attachment{Name: "inline.txt", ContentType: "text/plain", Content: []byte("x")}

	rec := &mailRecorder{}
	m := notify.NewMail(rec, notify.WithAttachmentLoader(email.NewLoader()))
	err := m.Send(context.Background(), notify.MailMessage{
		To:          "a@example.com",
		Subject:     "s",
		Message:     "m",
		Attachments: []email.Attachment{inline},
		Files:       map[string]string{"report.csv": path},
	})
	require.NoError(t, err)

	atts := rec.sent[0].Attachments
	require.Len(t, atts, 2)
	assert.Equal(t, inline, atts[0])
	assert.Equal(t, "report.csv", atts[1].Name)
	assert.Equal(t, []byte("a,b\n"), atts[1].Content)
}

func TestMail_Send_FilesWithoutLoader(t *testing.T) {
	t.Parallel()

	rec := &mailRecorder{}
	err := notify.NewMail(rec).Send(context.Background(), notify.MailMessage{
		To: "a@example.com", Subject: "s", Files: map[string]string{"x": "/tmp/x"},
	})
	require.ErrorIs(t, err, notify.ErrNoAttachmentLoader)
	assert.Empty(t, rec.sent)
}

func TestMail_Send_DevSender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := notify.NewMail(email.NewDevSender(dir))
	require.NoError(t, m.Send(context.Background(), notify.MailMessage{
		To: "a@example.com", Subject: "Dev", Message: "<p>m</p>", Table: numbers(t, 1),
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
