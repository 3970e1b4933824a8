// Package table converts a dataset into a bounded, presentation-ready table.
//
// Render applies a row cap (DefaultLimit, 30 rows) and one of two policies
// when a dataset exceeds it:
//
//   - Truncate keeps the first limit rows in their original order and reports
//     the truncation once through the configured diagnostics sink.
//   - Reject returns ErrDataFrameTooLarge and renders nothing, signalling the
//     caller must pre-filter the data.
//
// The result is target-neutral. HTML renders it as an e-mail fragment with an
// embedded stylesheet; the message package turns it into a card table.
//
//	rendered, err := table.Render(ds,
//		table.WithLimit(30),
//		table.WithPolicy(table.Truncate),
//		table.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	if rendered.Empty() {
//		// nothing to embed
//	}
//
// Diagnostics are never global: pass WithLogger or WithOnTruncate per call.
package table
