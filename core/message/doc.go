// Package message composes the ordered body of a chat notification and
// serializes it as an Adaptive Card.
//
// A message body is an ordered list of typed blocks. The order is the visual
// top-to-bottom order of the card. Blocks are plain Go values inside the
// package and are only turned into Adaptive Card JSON when marshaled.
//
// # Composer
//
// Composer is a single-use builder. The header must be set first; every
// other call may follow in any order until Finalize:
//
//	c := message.NewComposer()
//	_ = c.SetHeader("Nightly import", "production")
//	_ = c.AddWarning("3 files were skipped")
//	_ = c.AddText("Import finished.<br>See the report below.") // two text blocks
//	_ = c.AddReport(report.Item{Name: "Transactions", Source: ds})
//	if err := c.AddTable(ds, table.WithPolicy(table.Reject)); err != nil {
//		return err
//	}
//	_ = c.AddButtons(message.Button{Label: "Open dashboard", URL: dashboardURL})
//
//	body, err := c.Finalize()
//
// InsertRaw places caller-built card elements at any position. The element
// must carry a known Adaptive Card "type" and the index must be within
// [0, Len()]. Invalid input is rejected before anything changes.
//
// # Wire Format
//
// NewEnvelope wraps a finalized body in the payload expected by chat
// webhooks:
//
//	payload, err := json.Marshal(message.NewEnvelope(body))
//
// Composer is not safe for concurrent use; give each in-flight message its
// own instance.
package message
