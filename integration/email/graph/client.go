package graph

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"

	"github.com/dmitrymomot/notify/core/email"
)

const (
	defaultAuthURL  = "https://login.microsoftonline.com"
	defaultGraphURL = "https://graph.microsoft.com/v1.0"
	graphScope      = "https://graph.microsoft.com/.default"

	// Tokens are refreshed this long before they actually expire.
	tokenLeeway = time.Minute
)

// Client sends mail through the Graph sendMail endpoint using the
// client-credentials flow. It is safe for concurrent use.
type Client struct {
	config Config
	http   *resty.Client

	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the resty client used for both token and mail requests.
func WithHTTPClient(c *resty.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// New creates a Graph-backed email sender.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.TenantID == "" {
		return nil, fmt.Errorf("%w: TenantID is required", email.ErrInvalidConfig)
	}
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: ClientID is required", email.ErrInvalidConfig)
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: ClientSecret is required", email.ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", email.ErrInvalidConfig)
	}
	cfg.AuthURL = strings.TrimRight(lo.CoalesceOrEmpty(cfg.AuthURL, defaultAuthURL), "/")
	cfg.GraphURL = strings.TrimRight(lo.CoalesceOrEmpty(cfg.GraphURL, defaultGraphURL), "/")

	c := &Client{
		config: cfg,
		http:   resty.New().SetTimeout(30 * time.Second),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNewClient creates a Graph client that panics on invalid config.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Description string `json:"error_description"`
}

func (e graphError) String() string {
	return lo.CoalesceOrEmpty(e.Error.Message, e.Description, e.Error.Code)
}

// accessToken returns a cached token or acquires a new one.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expires) {
		return c.token, nil
	}

	var (
		tok    tokenResponse
		failed graphError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     c.config.ClientID,
			"client_secret": c.config.ClientSecret,
			"scope":         graphScope,
			"grant_type":    "client_credentials",
		}).
		SetResult(&tok).
		SetError(&failed).
		Post(fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.config.AuthURL, url.PathEscape(c.config.TenantID)))
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("token request failed: %d %s", resp.StatusCode(), failed)
	}
	if tok.AccessToken == "" {
		return "", errors.New("token response has no access_token")
	}

	c.token = tok.AccessToken
	c.expires = c.now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenLeeway)
	return c.token, nil
}

type (
	sendMailRequest struct {
		Message         mailMessage `json:"message"`
		SaveToSentItems bool        `json:"saveToSentItems"`
	}
	mailMessage struct {
		Subject       string           `json:"subject"`
		Body          itemBody         `json:"body"`
		ToRecipients  []recipient      `json:"toRecipients"`
		CcRecipients  []recipient      `json:"ccRecipients,omitempty"`
		BccRecipients []recipient      `json:"bccRecipients,omitempty"`
		Attachments   []fileAttachment `json:"attachments,omitempty"`
	}
	itemBody struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	}
	recipient struct {
		EmailAddress emailAddress `json:"emailAddress"`
	}
	emailAddress struct {
		Address string `json:"address"`
	}
	fileAttachment struct {
		ODataType    string `json:"@odata.type"`
		Name         string `json:"name"`
		ContentType  string `json:"contentType,omitempty"`
		ContentBytes string `json:"contentBytes"`
	}
)

func recipients(addrs []string) []recipient {
	return lo.Map(addrs, func(a string, _ int) recipient {
		return recipient{EmailAddress: emailAddress{Address: a}}
	})
}

// SendEmail implements EmailSender using the Graph sendMail action.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	body := sendMailRequest{
		Message: mailMessage{
			Subject:       params.Subject,
			Body:          itemBody{ContentType: "HTML", Content: params.BodyHTML},
			ToRecipients:  recipients(params.To()),
			CcRecipients:  recipients(params.Cc()),
			BccRecipients: recipients(params.Bcc()),
			Attachments: lo.Map(params.Attachments, func(a email.Attachment, _ int) fileAttachment {
				return fileAttachment{
					ODataType:    "#microsoft.graph.fileAttachment",
					Name:         a.Name,
					ContentType:  a.ContentType,
					ContentBytes: base64.StdEncoding.EncodeToString(a.Content),
				}
			}),
		},
		SaveToSentItems: true,
	}

	var failed graphError
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		SetError(&failed).
		Post(fmt.Sprintf("%s/users/%s/sendMail", c.config.GraphURL, url.PathEscape(c.config.SenderEmail)))
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.IsError() {
		return errors.Join(
			email.ErrFailedToSendEmail,
			fmt.Errorf("graph error: %d - %s", resp.StatusCode(), failed),
		)
	}
	return nil
}
