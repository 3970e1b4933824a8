package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/notify/core/table"
)

const headStyle = `h1 {
	background-color: #a8a8a8;
	display: flex;
	flex-direction: column;
	justify-content: center;
	text-align: center;
}`

// Render converts a templ component to an HTML string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Document returns a full HTML document: head with title and stylesheet,
// then the message followed by the table fragment.
func Document(title, message string, t *table.Rendered) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<html><head><meta http-equiv="Content-Type" content="text/html; charset=utf-8"><title>`+
			templ.EscapeString(title)+`</title><style type="text/css" media="screen">`+headStyle+`</style></head><body>`); err != nil {
			return err
		}
		if err := templ.Raw(message).Render(ctx, w); err != nil {
			return err
		}
		if err := table.HTML(t).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}
