package teams

import "time"

// Config holds the incoming webhook settings for a Teams channel.
type Config struct {
	WebhookURL string        `env:"TEAMS_WEBHOOK,required,notEmpty"`
	Timeout    time.Duration `env:"TEAMS_TIMEOUT" envDefault:"30s"`
}
