package email

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Attachment is a file embedded in an email.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// Fetcher loads attachment content for a URL scheme, e.g. "s3".
type Fetcher interface {
	Fetch(ctx context.Context, location *url.URL) ([]byte, error)
}

// Loader reads attachments from local paths, http(s) URLs, and any scheme
// with a registered Fetcher.
type Loader struct {
	http     *resty.Client
	fetchers map[string]Fetcher
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient replaces the client used for http(s) downloads.
func WithHTTPClient(c *resty.Client) LoaderOption {
	return func(l *Loader) {
		l.http = c
	}
}

// WithFetcher registers f for locations with the given URL scheme.
func WithFetcher(scheme string, f Fetcher) LoaderOption {
	return func(l *Loader) {
		l.fetchers[strings.ToLower(scheme)] = f
	}
}

// NewLoader creates an attachment loader. Downloads time out after 30 seconds
// unless a custom client is supplied.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{fetchers: make(map[string]Fetcher)}
	for _, opt := range opts {
		opt(l)
	}
	if l.http == nil {
		l.http = resty.New().SetTimeout(30 * time.Second)
	}
	return l
}

// Load reads the attachment at location and names it name.
// Locations starting with "www." are fetched over https.
func (l *Loader) Load(ctx context.Context, name, location string) (Attachment, error) {
	if name == "" {
		name = filepath.Base(location)
	}

	content, err := l.read(ctx, location)
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: %s: %v", ErrAttachment, location, err)
	}

	return Attachment{
		Name:        name,
		ContentType: contentType(name, content),
		Content:     content,
	}, nil
}

// LoadAll loads files given as name -> location pairs, in the order of names.
func (l *Loader) LoadAll(ctx context.Context, names []string, locations map[string]string) ([]Attachment, error) {
	out := make([]Attachment, 0, len(names))
	for _, name := range names {
		a, err := l.Load(ctx, name, locations[name])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "www.") {
		location = "https://" + location
	}

	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 { // "C:\..." parses with a one-letter scheme
		return os.ReadFile(location)
	}

	switch scheme := strings.ToLower(u.Scheme); scheme {
	case "file":
		return os.ReadFile(u.Path)
	case "http", "https":
		return l.download(ctx, u.String())
	default:
		f, ok := l.fetchers[scheme]
		if !ok {
			return nil, fmt.Errorf("unsupported scheme %q", scheme)
		}
		return f.Fetch(ctx, u)
	}
}

func (l *Loader) download(ctx context.Context, u string) ([]byte, error) {
	resp, err := l.http.R().SetContext(ctx).Get(u)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func contentType(name string, content []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(content)
}
