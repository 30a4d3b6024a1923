// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`: the
// default `.env` file in the working directory is loaded once per process (if
// it exists), then environment variables are parsed into any annotated struct.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type StorageConfig struct {
//	    Driver  string `env:"STORAGE_DRIVER" envDefault:"file"`
//	    BaseDir string `env:"STORAGE_DIR" envDefault:"./data"`
//	}
//
// Then populate it:
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// MustLoad panics on failure and is meant for configuration the process
// cannot start without.
//
// # Error Handling
//
// Sentinel errors compare with `errors.Is`:
//
//   - ErrParsingConfig – failed to parse env vars into the struct.
//   - ErrNilPointer    – nil pointer passed to Load/MustLoad.
package config
