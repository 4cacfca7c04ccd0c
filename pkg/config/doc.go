// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Values come from the process environment, optionally layered over one
//     or more `.env` files (the default `.env` in the working directory is
//     read when present).
//   - Structs are populated through `env` field tags, including defaults,
//     required fields, slices and pointer fields that stay nil when unset.
//   - A prefix can be applied to every variable name, so one struct type can
//     be reused for several components.
//
// # Usage
//
//	type PolicyConfig struct {
//	    MinLength *int     `env:"MIN_LENGTH"`
//	    Blacklist []string `env:"BLACKLIST" envSeparator:","`
//	}
//
//	var cfg PolicyConfig
//	if err := config.Load(&cfg, config.WithPrefix("USERNAME_")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Tests can bypass the process environment entirely:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//	    "USERNAME_MIN_LENGTH": "3",
//	}))
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrReadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
