package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every variable name declared in env tags,
// so `env:"MIN_LENGTH"` with prefix "USERNAME_" reads USERNAME_MIN_LENGTH.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads the given .env files. Missing files are an error.
// Later files override earlier ones; real environment values override both.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithEnvironment replaces the process environment with the given map.
// The default .env file is not consulted in that case.
func WithEnvironment(environment map[string]string) Option {
	return func(o *options) {
		o.environment = environment
	}
}

// Load parses environment variables into the struct pointed to by v using
// caarlos0/env field tags.
//
// Without WithEnvFiles the .env file in the working directory is read when it
// exists; its absence is not an error.
//
// Example:
//
//	type PolicyConfig struct {
//		MinLength int `env:"MIN_LENGTH" envDefault:"6"`
//		MaxLength int `env:"MAX_LENGTH" envDefault:"20"`
//	}
//
//	var cfg PolicyConfig
//	if err := config.Load(&cfg, config.WithPrefix("USERNAME_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environment, err := o.resolveEnvironment()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func (o *options) resolveEnvironment() (map[string]string, error) {
	base := o.environment
	fromFiles := map[string]string{}

	switch {
	case len(o.files) > 0:
		values, err := godotenv.Read(o.files...)
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, err)
		}
		fromFiles = values
	case base == nil:
		// The default .env file is optional.
		if values, err := godotenv.Read(); err == nil {
			fromFiles = values
		}
	}

	if base == nil {
		base = environMap(os.Environ())
	}

	merged := make(map[string]string, len(fromFiles)+len(base))
	maps.Copy(merged, fromFiles)
	maps.Copy(merged, base)
	return merged, nil
}

func environMap(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			result[key] = value
		}
	}
	return result
}
