// Package graph implements email.EmailSender with the Microsoft Graph
// sendMail API.
//
// The client authenticates with the OAuth2 client-credentials flow against
// the tenant configured in MAIL_TENANT_ID, caches the access token until
// shortly before it expires, and posts one sendMail request per message.
// Sent messages are saved to the sender's Sent Items.
//
//	var cfg graph.Config
//	config.MustLoad(&cfg)
//	sender := graph.MustNewClient(cfg)
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:      "ops@example.com",
//		Subject:     "Daily report",
//		BodyHTML:    body,
//		Attachments: files,
//	})
//
// AuthURL and GraphURL default to the public cloud endpoints and can be
// overridden for national clouds or tests.
package graph
