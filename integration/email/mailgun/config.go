package mailgun

// Config holds Mailgun API configuration.
// Region selects the API endpoint: "us" (default) or "eu".
type Config struct {
	APIKey       string `env:"MAILGUN_API_KEY,required"`
	Domain       string `env:"MAILGUN_DOMAIN,required"`
	Region       string `env:"MAILGUN_REGION" envDefault:"us"`
	SenderEmail  string `env:"EMAIL_USER,required"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
	BaseURL      string `env:"MAILGUN_BASE_URL"`
}
