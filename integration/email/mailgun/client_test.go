package mailgun_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notify/core/email"
	"github.com/dmitrymomot/notify/integration/email/mailgun"
)

func validConfig() mailgun.Config {
	return mailgun.Config{
		APIKey:      "key-123",
		Domain:      "mg.example.com",
		SenderEmail: "sender@example.com",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*mailgun.Config)
		errMsg string
	}{
		{name: "valid", modify: func(*mailgun.Config) {}},
		{name: "eu region", modify: func(c *mailgun.Config) { c.Region = "eu" }},
		{name: "missing key", modify: func(c *mailgun.Config) { c.APIKey = "" }, errMsg: "APIKey is required"},
		{name: "missing domain", modify: func(c *mailgun.Config) { c.Domain = "" }, errMsg: "Domain is required"},
		{name: "bad region", modify: func(c *mailgun.Config) { c.Region = "asia" }, errMsg: "Region must be us or eu"},
		{name: "bad sender", modify: func(c *mailgun.Config) { c.SenderEmail = "x" }, errMsg: "SenderEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.modify(&cfg)
			sender, err := mailgun.New(cfg)
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

func TestClient_SendEmail(t *testing.T) {
	t.Parallel()

	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mg.example.com/messages", r.URL.Path)
		_ = r.ParseMultipartForm(10 << 20)
		form = r.Form
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"<20240305.1@mg.example.com>","message":"Queued. Thank you."}`))
	}))
	t.Cleanup(srv.Close)

	cfg := validConfig()
	cfg.BaseURL = srv.URL + "/v3"
	cfg.SupportEmail = "support@example.com"
	sender := mailgun.MustNewClient(cfg)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "a@example.com,b@example.com",
		CC:       "c@example.com",
		BCC:      "d@example.com",
		Subject:  "Report",
		BodyHTML: "<p>hi</p>",
		Tag:      "report",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sender@example.com"}, form["from"])
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, form["to"])
	assert.Equal(t, []string{"c@example.com"}, form["cc"])
	assert.Equal(t, []string{"d@example.com"}, form["bcc"])
	assert.Equal(t, []string{"Report"}, form["subject"])
	assert.Equal(t, []string{"<p>hi</p>"}, form["html"])
	assert.Equal(t, []string{"report"}, form["o:tag"])
}

func TestClient_SendEmail_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Domain not found"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	cfg := validConfig()
	cfg.BaseURL = srv.URL + "/v3"
	err := mailgun.MustNewClient(cfg).SendEmail(context.Background(), email.SendEmailParams{
		SendTo: "a@example.com", Subject: "s", BodyHTML: "<p>b</p>",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}
