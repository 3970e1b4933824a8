// Package email defines the mail channel boundary: the EmailSender interface,
// the parameters every transport receives, attachment loading, and a
// development sender that writes messages to disk.
//
// # Usage
//
//	sender := email.NewDevSender("./dev_emails")
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "ops@example.com; finance@example.com",
//		CC:       "lead@example.com",
//		Subject:  "Nightly import",
//		BodyHTML: html, // see the templates subpackage
//		Tag:      "nightly_import",
//	})
//
// Recipient fields accept "," or ";" separated lists. Validate checks every
// address before a transport opens a connection.
//
// # Transports
//
// The rendering and composition code never depends on which transport is
// used. Production implementations live under integration/email:
//
//   - smtp: plain SMTP with STARTTLS, TLS or no encryption
//   - graph: Microsoft Graph sendMail with app-only OAuth2 credentials
//   - postmark: Postmark transactional API
//
// # Attachments
//
// Loader reads attachment content from a local path, an http(s) URL or any
// scheme with a registered Fetcher (integration/storage/s3 serves "s3://"):
//
//	loader := email.NewLoader(email.WithFetcher("s3", bucketFetcher))
//	a, err := loader.Load(ctx, "cars.csv", "s3://reports/2010/cars.csv")
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//		// bad recipients, subject or body
//	case errors.Is(err, email.ErrInvalidConfig):
//		// transport misconfigured
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		// delivery failed; no retries are attempted
//	}
package email
