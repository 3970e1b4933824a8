package postmark

// Config holds Postmark API configuration.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	SenderEmail          string `env:"EMAIL_USER,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
	BaseURL              string `env:"POSTMARK_BASE_URL"`
}
