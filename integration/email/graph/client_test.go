package graph_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notify/core/email"
	"github.com/dmitrymomot/notify/integration/email/graph"
)

type fakeGraph struct {
	tokenCalls atomic.Int32
	sendCalls  atomic.Int32
	sendStatus int
	lastBody   map[string]any
	lastAuth   string
}

func (f *fakeGraph) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tenant-1/oauth2/v2.0/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "https://graph.microsoft.com/.default", r.PostForm.Get("scope"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"Bearer"}`))
	})
	mux.HandleFunc("POST /v1.0/users/sender@example.com/sendMail", func(w http.ResponseWriter, r *http.Request) {
		f.sendCalls.Add(1)
		f.lastAuth = r.Header.Get("Authorization")
		f.lastBody = map[string]any{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastBody))
		if f.sendStatus != 0 && f.sendStatus != http.StatusAccepted {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.sendStatus)
			_, _ = w.Write([]byte(`{"error":{"code":"ErrorAccessDenied","message":"Access is denied."}}`))
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	return mux
}

func newClient(t *testing.T, f *fakeGraph) *graph.Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	return graph.MustNewClient(graph.Config{
		SenderEmail:  "sender@example.com",
		TenantID:     "tenant-1",
		ClientID:     "client-1",
		ClientSecret: "secret",
		AuthURL:      srv.URL,
		GraphURL:     srv.URL + "/v1.0",
	})
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	valid := graph.Config{SenderEmail: "s@example.com", TenantID: "t", ClientID: "c", ClientSecret: "x"}

	tests := []struct {
		name   string
		modify func(*graph.Config)
		errMsg string
	}{
		{name: "valid", modify: func(*graph.Config) {}},
		{name: "missing tenant", modify: func(c *graph.Config) { c.TenantID = "" }, errMsg: "TenantID is required"},
		{name: "missing client id", modify: func(c *graph.Config) { c.ClientID = "" }, errMsg: "ClientID is required"},
		{name: "missing secret", modify: func(c *graph.Config) { c.ClientSecret = "" }, errMsg: "ClientSecret is required"},
		{name: "missing sender", modify: func(c *graph.Config) { c.SenderEmail = "" }, errMsg: "SenderEmail is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tt.modify(&cfg)
			c, err := graph.New(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				assert.NotNil(t, c)
				return
			}
			require.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestClient_SendEmail(t *testing.T) {
	t.Parallel()

	f := &fakeGraph{}
	client := newClient(t, f)

	err := client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "a@example.com,b@example.com",
		CC:       "c@example.com",
		BCC:      "d@example.com",
		Subject:  "Report",
		BodyHTML: "<p>hi</p>",
		Attachments: []email.Attachment{
			{Name: "data.csv", ContentType: "text/csv", Content: []byte("a,b\n1,2\n")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", f.lastAuth)
	assert.Equal(t, true, f.lastBody["saveToSentItems"])

	msg := f.lastBody["message"].(map[string]any)
	assert.Equal(t, "Report", msg["subject"])
	assert.Equal(t, map[string]any{"contentType": "HTML", "content": "<p>hi</p>"}, msg["body"])
	assert.Len(t, msg["toRecipients"], 2)
	assert.Len(t, msg["ccRecipients"], 1)
	assert.Len(t, msg["bccRecipients"], 1)

	atts := msg["attachments"].([]any)
	require.Len(t, atts, 1)
	att := atts[0].(map[string]any)
	assert.Equal(t, "#microsoft.graph.fileAttachment", att["@odata.type"])
	assert.Equal(t, "data.csv", att["name"])
	assert.Equal(t, "YSxiCjEsMgo=", att["contentBytes"])
}

func TestClient_SendEmail_ReusesToken(t *testing.T) {
	t.Parallel()

	f := &fakeGraph{}
	client := newClient(t, f)

	params := email.SendEmailParams{SendTo: "a@example.com", Subject: "s", BodyHTML: "<p>b</p>"}
	require.NoError(t, client.SendEmail(context.Background(), params))
	require.NoError(t, client.SendEmail(context.Background(), params))

	assert.Equal(t, int32(1), f.tokenCalls.Load())
	assert.Equal(t, int32(2), f.sendCalls.Load())
}

func TestClient_SendEmail_GraphError(t *testing.T) {
	t.Parallel()

	f := &fakeGraph{sendStatus: http.StatusForbidden}
	client := newClient(t, f)

	err := client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo: "a@example.com", Subject: "s", BodyHTML: "<p>b</p>",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "Access is denied.")
}

func TestClient_SendEmail_InvalidParams(t *testing.T) {
	t.Parallel()

	f := &fakeGraph{}
	client := newClient(t, f)

	err := client.SendEmail(context.Background(), email.SendEmailParams{SendTo: "nope", Subject: "s", BodyHTML: "b"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
	assert.Zero(t, f.tokenCalls.Load())
}
