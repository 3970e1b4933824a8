// Package postmark implements email.EmailSender on top of the Postmark
// transactional API.
//
// Recipients from SendTo, CC and BCC are passed through as comma-separated
// lists and attachments are sent inline as base64 content. Opens and HTML
// link clicks are tracked, and Reply-To is set when SUPPORT_EMAIL is configured.
//
// # Configuration
//
//	type Config struct {
//		PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
//		PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
//		SenderEmail          string `env:"EMAIL_USER,required"`
//		SupportEmail         string `env:"SUPPORT_EMAIL"`
//		BaseURL              string `env:"POSTMARK_BASE_URL"`
//	}
//
// BaseURL overrides the API endpoint and is mostly useful in tests.
//
// # Usage
//
//	var cfg postmark.Config
//	config.MustLoad(&cfg)
//	sender := postmark.MustNewClient(cfg)
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "ops@example.com",
//		Subject:  "Daily report",
//		BodyHTML: body,
//		Tag:      "report",
//	})
//	if errors.Is(err, email.ErrFailedToSendEmail) {
//		// Postmark rejected the message or the request failed
//	}
package postmark
