// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// A .env file in the working directory is loaded on first use via godotenv;
// parsing is done by caarlos0/env.
//
//	type TeamsConfig struct {
//		Webhook string `env:"TEAMS_WEBHOOK,required,notEmpty"`
//	}
//
//	var cfg TeamsConfig
//	if err := config.Load(&cfg); err != nil {
//		if errors.Is(err, config.ErrMissingConfiguration) {
//			// a required variable is absent: refuse to start
//		}
//		return err
//	}
//
// Transports take their configuration as an already loaded value, so a
// missing credential is reported here, before any message is composed.
//
// # Caching Behavior
//
// Different types are cached independently. Loading the same type twice
// returns the first result even if the environment changed in between.
package config
