package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrMissingConfiguration means a required environment variable is unset or empty.
	ErrMissingConfiguration = errors.New("missing required configuration")
	// ErrParsingConfig means a value is present but could not be parsed.
	ErrParsingConfig = errors.New("failed to parse configuration")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> value
)

// Load populates cfg from the environment. Each configuration type is
// parsed once; later calls for the same type copy the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config pointer", ErrParsingConfig)
	}

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	dotenvOnce.Do(func() {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	})

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		if errors.Is(err, env.VarIsNotSetError{}) || errors.Is(err, env.EmptyVarError{}) {
			return errors.Join(ErrMissingConfiguration, err)
		}
		return errors.Join(ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(key, parsed)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error. Use it during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

func resetCache() {
	cache.Clear()
}
