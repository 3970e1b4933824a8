// Package mailgun implements email.EmailSender on top of the Mailgun
// messages API.
//
//	var cfg mailgun.Config
//	config.MustLoad(&cfg)
//	sender := mailgun.MustNewClient(cfg)
//
// MAILGUN_REGION=eu routes requests to the EU endpoint. MAILGUN_BASE_URL
// overrides the endpoint entirely and must include the "/v3" suffix.
// SendEmailParams.Tag is sent as a Mailgun tag and attachments are uploaded
// from memory.
package mailgun
