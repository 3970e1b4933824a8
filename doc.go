// Package notify sends notifications to e-mail and team-chat channels,
// optionally embedding tabular data.
//
// Two notifiers sit on top of the core packages:
//
//   - Teams composes an Adaptive Card body (header, warning, text, reports,
//     table, buttons) with core/message and sends it through a ChatSender
//     such as integration/chat/teams.
//   - Mail renders an HTML document with core/email/templates and sends it
//     through any email.EmailSender: integration/email/smtp,
//     integration/email/graph, integration/email/postmark or email.DevSender.
//
// Tables are rendered with core/table. At most 30 rows are shown by default;
// larger datasets are truncated with a warning or rejected with
// table.ErrDataFrameTooLarge depending on WithExceedPolicy.
//
//	var cfg teams.Config
//	config.MustLoad(&cfg)
//
//	notifier := notify.NewTeams(teams.MustNewClient(cfg),
//		notify.WithLogger(log),
//		notify.WithExceedPolicy(table.Reject),
//	)
//	err := notifier.BasicMessage(ctx, notify.TeamsMessage{
//		Title: "Nightly import",
//		Text:  "Import finished<br>See the table below",
//		Table: ds,
//		Buttons: []message.Button{
//			{Label: "Open dashboard", URL: "https://example.com/dash"},
//		},
//	})
//
// # Package Index
//
//   - github.com/dmitrymomot/notify/core/config: generic environment configuration loading
//   - github.com/dmitrymomot/notify/core/dataset: column-major datasets, Arrow/Parquet loading and locale-aware formatting
//   - github.com/dmitrymomot/notify/core/email: EmailSender contract, parameters, attachments, DevSender
//   - github.com/dmitrymomot/notify/core/email/templates: HTML mail documents
//   - github.com/dmitrymomot/notify/core/logger: slog construction and attribute helpers
//   - github.com/dmitrymomot/notify/core/message: card body composition and webhook envelope
//   - github.com/dmitrymomot/notify/core/report: dataset shape summaries
//   - github.com/dmitrymomot/notify/core/table: bounded table rendering
//   - github.com/dmitrymomot/notify/integration/chat/teams: Teams incoming webhook client
//   - github.com/dmitrymomot/notify/integration/email/graph: Microsoft Graph sendMail transport
//   - github.com/dmitrymomot/notify/integration/email/postmark: Postmark transport
//   - github.com/dmitrymomot/notify/integration/email/smtp: SMTP transport
//   - github.com/dmitrymomot/notify/integration/storage/s3: S3 attachment fetcher
//   - github.com/dmitrymomot/notify/pkg/webhook: single-attempt JSON webhook delivery
package notify
