package smtp

// Config holds SMTP server configuration.
// Host, credentials and sender are required; ReplyTo is optional.
type Config struct {
	Host        string `env:"SMTP_HOST,required"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME,required"`
	Password    string `env:"SMTP_PASSWORD,required"`
	TLSMode     string `env:"SMTP_TLS_MODE" envDefault:"starttls"` // starttls, tls, or plain
	SenderEmail string `env:"EMAIL_USER,required"`
	ReplyTo     string `env:"SMTP_REPLY_TO"`
}
