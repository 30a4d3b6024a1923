package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided struct from environment variables.
//
// The default .env file is loaded into the process environment the first
// time Load is called; a missing file is not an error. Parsing is driven by
// `env` field tags.
//
// Example:
//
//	type ForwardConfig struct {
//		BaseURL string        `env:"FORWARD_BASE_URL"`
//		Timeout time.Duration `env:"FORWARD_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg ForwardConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
