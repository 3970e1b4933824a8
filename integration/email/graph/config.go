package graph

// Config holds Microsoft Graph application credentials.
// SenderEmail is the mailbox the message is sent from.
type Config struct {
	SenderEmail  string `env:"EMAIL_USER,required"`
	TenantID     string `env:"MAIL_TENANT_ID,required"`
	ClientID     string `env:"MAIL_CLIENT_ID,required"`
	ClientSecret string `env:"MAIL_CLIENT_SECRET,required"`
	AuthURL      string `env:"MAIL_AUTH_URL" envDefault:"https://login.microsoftonline.com"`
	GraphURL     string `env:"MAIL_GRAPH_URL" envDefault:"https://graph.microsoft.com/v1.0"`
}
