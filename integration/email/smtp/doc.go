// Package smtp provides an SMTP-based implementation of the email.EmailSender interface.
//
// Messages are sent as HTML. When attachments are present the message becomes
// multipart/mixed with each attachment base64 encoded. Every address from
// SendTo, CC and BCC receives the message, but BCC addresses never appear in
// the headers.
//
// Basic usage:
//
//	var cfg smtp.Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle missing SMTP_* variables
//	}
//
//	sender, err := smtp.New(cfg)
//	if err != nil {
//		// Handle configuration error
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "ops@example.com; lead@example.com",
//		CC:       "audit@example.com",
//		Subject:  "Daily report",
//		BodyHTML: body,
//	})
//
// # Configuration
//
//   - SMTP_HOST: server hostname (required)
//   - SMTP_PORT: server port, defaults to 587
//   - SMTP_USERNAME, SMTP_PASSWORD: PLAIN auth credentials (required)
//   - SMTP_TLS_MODE: "starttls" (default), "tls" or "plain"
//   - EMAIL_USER: the From address (required)
//   - SMTP_REPLY_TO: optional Reply-To address
//
// Plain mode only authenticates against localhost, as enforced by net/smtp.
package smtp
