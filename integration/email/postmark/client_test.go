package postmark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notify/core/email"
	"github.com/dmitrymomot/notify/integration/email/postmark"
)

func validConfig() postmark.Config {
	return postmark.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "sender@example.com",
		SupportEmail:         "support@example.com",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*postmark.Config)
		errMsg string
	}{
		{name: "valid", modify: func(*postmark.Config) {}},
		{name: "support email optional", modify: func(c *postmark.Config) { c.SupportEmail = "" }},
		{name: "missing server token", modify: func(c *postmark.Config) { c.PostmarkServerToken = "" }, errMsg: "PostmarkServerToken is required"},
		{name: "missing account token", modify: func(c *postmark.Config) { c.PostmarkAccountToken = "" }, errMsg: "PostmarkAccountToken is required"},
		{name: "missing sender", modify: func(c *postmark.Config) { c.SenderEmail = "" }, errMsg: "SenderEmail is required"},
		{name: "invalid sender", modify: func(c *postmark.Config) { c.SenderEmail = "bad" }, errMsg: "SenderEmail must be a valid email address"},
		{name: "invalid support", modify: func(c *postmark.Config) { c.SupportEmail = "bad" }, errMsg: "SupportEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.modify(&cfg)

			sender, err := postmark.New(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				assert.NotNil(t, sender)
				return
			}
			require.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMustNewClient_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { postmark.MustNewClient(postmark.Config{}) })
}

func TestClient_SendEmail(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email", r.URL.Path)
		assert.Equal(t, "server-token", r.Header.Get("X-Postmark-Server-Token"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"a@example.com","MessageID":"abc","ErrorCode":0,"Message":"OK"}`))
	}))
	t.Cleanup(srv.Close)

	cfg := validConfig()
	cfg.BaseURL = srv.URL
	sender := postmark.MustNewClient(cfg)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "a@example.com; b@example.com",
		CC:       "c@example.com",
		BCC:      "d@example.com",
		Subject:  "Report",
		BodyHTML: "<p>hi</p>",
		Tag:      "report",
		Attachments: []email.Attachment{
			{Name: "data.csv", Content: []byte("a,b\n1,2\n")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "sender@example.com", got["From"])
	assert.Equal(t, "support@example.com", got["ReplyTo"])
	assert.Equal(t, "a@example.com,b@example.com", got["To"])
	assert.Equal(t, "c@example.com", got["Cc"])
	assert.Equal(t, "d@example.com", got["Bcc"])
	assert.Equal(t, "<p>hi</p>", got["HtmlBody"])

	atts, ok := got["Attachments"].([]any)
	require.True(t, ok)
	require.Len(t, atts, 1)
	att := atts[0].(map[string]any)
	assert.Equal(t, "data.csv", att["Name"])
	assert.Equal(t, "YSxiCjEsMgo=", att["Content"])
	assert.Equal(t, "application/octet-stream", att["ContentType"])
}

func TestClient_SendEmail_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	t.Cleanup(srv.Close)

	cfg := validConfig()
	cfg.BaseURL = srv.URL
	sender := postmark.MustNewClient(cfg)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "a@example.com",
		Subject:  "Report",
		BodyHTML: "<p>hi</p>",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}

func TestClient_SendEmail_InvalidParams(t *testing.T) {
	t.Parallel()

	sender := postmark.MustNewClient(validConfig())
	err := sender.SendEmail(context.Background(), email.SendEmailParams{SendTo: "a@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
