package username

import (
	"fmt"

	"github.com/dmitrymomot/usernamekit/pkg/blacklist"
	"github.com/dmitrymomot/usernamekit/pkg/config"
	"github.com/dmitrymomot/usernamekit/pkg/sanitizer"
)

// EnvPrefix is prepended to every EnvConfig variable by NewFromEnv.
const EnvPrefix = "USERNAME_"

// EnvConfig is the environment representation of a policy. Unset variables
// leave the corresponding default untouched.
type EnvConfig struct {
	Trim              *bool    `env:"TRIM"`
	Lowercase         *bool    `env:"LOWERCASE"`
	Uppercase         *bool    `env:"UPPERCASE"`
	MinLength         *int     `env:"MIN_LENGTH"`
	MaxLength         *int     `env:"MAX_LENGTH"`
	Blacklist         []string `env:"BLACKLIST" envSeparator:","`
	BlacklistFile     string   `env:"BLACKLIST_FILE"`
	AllowedCharacters []string `env:"ALLOWED_CHARACTERS" envSeparator:","`
}

// Options converts the set fields into options. Inline blacklist entries are
// trimmed and come first, followed by the words loaded from BlacklistFile.
// Setting either replaces the built-in list.
func (c EnvConfig) Options() ([]Option, error) {
	var opts []Option

	if c.Trim != nil {
		opts = append(opts, WithTrim(*c.Trim))
	}
	if c.Lowercase != nil {
		opts = append(opts, WithLowercase(*c.Lowercase))
	}
	if c.Uppercase != nil {
		opts = append(opts, WithUppercase(*c.Uppercase))
	}
	if c.MinLength != nil {
		opts = append(opts, WithMinLength(*c.MinLength))
	}
	if c.MaxLength != nil {
		opts = append(opts, WithMaxLength(*c.MaxLength))
	}

	if c.Blacklist != nil || c.BlacklistFile != "" {
		words := make([]string, 0, len(c.Blacklist))
		for _, w := range c.Blacklist {
			if w = sanitizer.Trim(w); w != "" {
				words = append(words, w)
			}
		}
		if c.BlacklistFile != "" {
			fromFile, err := blacklist.LoadFile(c.BlacklistFile)
			if err != nil {
				return nil, fmt.Errorf("username blacklist file: %w", err)
			}
			words = append(words, fromFile...)
		}
		opts = append(opts, WithBlacklist(words...))
	}

	if c.AllowedCharacters != nil {
		sets := make([]Charset, 0, len(c.AllowedCharacters))
		for _, name := range c.AllowedCharacters {
			set, err := ParseCharset(name)
			if err != nil {
				return nil, err
			}
			sets = append(sets, set)
		}
		opts = append(opts, WithAllowedCharacters(sets...))
	}

	return opts, nil
}

// NewFromEnv builds a Validator from USERNAME_* environment variables.
// opts are passed to config.Load after the prefix, so callers can add env
// files or substitute the environment. Use EnvConfig.Options with New to
// combine the environment with other options such as WithLogger.
func NewFromEnv(opts ...config.Option) (*Validator, error) {
	var cfg EnvConfig
	if err := config.Load(&cfg, append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...); err != nil {
		return nil, err
	}

	validatorOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return New(validatorOpts...), nil
}
