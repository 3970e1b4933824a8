package table

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Stylesheet is embedded with every HTML table fragment.
const Stylesheet = `.styled-table {
	border-collapse: collapse;
	margin: 25px 0;
	font-size: 0.9em;
	font-family: sans-serif;
	min-width: 400px;
	box-shadow: 0 0 20px rgba(0, 0, 0, 0.15);
}
.styled-table thead tr {
	background-color: #009879;
	color: #ffffff;
	text-align: left;
}
.styled-table th,
.styled-table td {
	padding: 12px 15px;
}
.styled-table tbody tr {
	border-bottom: thin solid #dddddd;
}
.styled-table tbody tr:nth-of-type(even) {
	background-color: #f3f3f3;
}
.styled-table tbody tr:last-of-type {
	border-bottom: 2px solid #009879;
}`

// HTML returns a component writing r as a styled HTML table fragment.
// An empty table renders nothing.
func HTML(r *Rendered) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if r.Empty() {
			return nil
		}

		var b strings.Builder
		b.WriteString(`<style type="text/css">`)
		b.WriteString(Stylesheet)
		b.WriteString(`</style><table class="styled-table"><thead><tr style="text-align: center;">`)
		for _, c := range r.Columns {
			b.WriteString("<th>")
			b.WriteString(templ.EscapeString(c))
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead><tbody>")
		for _, row := range r.Rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				b.WriteString("<td>")
				b.WriteString(templ.EscapeString(cell))
				b.WriteString("</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HTMLString renders r to a string. It returns "" for an empty table.
func HTMLString(ctx context.Context, r *Rendered) (string, error) {
	var b strings.Builder
	if err := HTML(r).Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
