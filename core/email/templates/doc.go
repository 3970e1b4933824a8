// Package templates renders the HTML document sent by the mail channel.
//
// Document combines the caller's message (HTML or plain text, inserted as is)
// with an optional bounded table fragment produced by the table package:
//
//	rendered, err := table.Render(ds, table.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	html, err := templates.Render(ctx, templates.Document("Dataframe report", message, rendered))
//
// When the table is empty no table markup is emitted.
package templates
