package resend

// Config holds Resend API configuration.
type Config struct {
	APIKey       string `env:"RESEND_API_KEY,required"`
	SenderEmail  string `env:"EMAIL_USER,required"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
	BaseURL      string `env:"RESEND_BASE_URL"`
}
