// Package resend implements email.EmailSender on top of the Resend API.
//
// Recipients from SendTo, CC and BCC are passed as lists, attachments are
// sent inline, and SendEmailParams.Tag becomes a "category" tag with
// unsupported characters replaced by underscores.
//
//	var cfg resend.Config
//	config.MustLoad(&cfg)
//	sender := resend.MustNewClient(cfg)
//
// Configuration is read from RESEND_API_KEY, EMAIL_USER, SUPPORT_EMAIL
// (optional Reply-To) and RESEND_BASE_URL (optional endpoint override).
package resend
