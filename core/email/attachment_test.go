package email_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notify/core/email"
)

type stubFetcher struct {
	got  *url.URL
	data []byte
}

func (s *stubFetcher) Fetch(_ context.Context, u *url.URL) ([]byte, error) {
	s.got = u
	return s.data, nil
}

func TestLoader_LocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte("make,mpg\n"), 0o644))

	a, err := email.NewLoader().Load(context.Background(), "", path)
	require.NoError(t, err)
	assert.Equal(t, "cars.csv", a.Name)
	assert.Equal(t, []byte("make,mpg\n"), a.Content)
	assert.NotEmpty(t, a.ContentType)
}

func TestLoader_HTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("remote-bytes"))
	}))
	t.Cleanup(srv.Close)

	loader := email.NewLoader()

	a, err := loader.Load(context.Background(), "remote.bin", srv.URL+"/file")
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-bytes"), a.Content)

	_, err = loader.Load(context.Background(), "x", srv.URL+"/missing")
	assert.ErrorIs(t, err, email.ErrAttachment)
}

func TestLoader_CustomScheme(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{data: []byte("from-bucket")}
	loader := email.NewLoader(email.WithFetcher("s3", f))

	a, err := loader.Load(context.Background(), "report.pdf", "s3://reports/2024/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("from-bucket"), a.Content)
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.Equal(t, "reports", f.got.Host)

	_, err = loader.Load(context.Background(), "x", "ftp://host/file")
	assert.ErrorIs(t, err, email.ErrAttachment)
}

func TestLoader_LoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))

	atts, err := email.NewLoader().LoadAll(context.Background(),
		[]string{"second.txt", "first.txt"},
		map[string]string{
			"first.txt":  filepath.Join(dir, "a.txt"),
			"second.txt": filepath.Join(dir, "b.txt"),
		},
	)
	require.NoError(t, err)
	require.Len(t, atts, 2)
	assert.Equal(t, "second.txt", atts[0].Name)
	assert.Equal(t, []byte("b"), atts[0].Content)
}
