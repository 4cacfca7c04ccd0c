package username

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/usernamekit/pkg/blacklist"
)

// Config is a fully resolved username policy.
type Config struct {
	// Trim strips leading and trailing whitespace before any other step.
	Trim bool
	// Lowercase folds the username to lowercase after trimming.
	Lowercase bool
	// Uppercase folds the username to uppercase after lowercasing,
	// so it wins when both are set.
	Uppercase bool
	// MinLength and MaxLength bound the length in code points. They are not
	// cross-checked: MaxLength < MinLength rejects every username.
	MinLength int
	MaxLength int
	// Blacklist holds forbidden substrings, matched case-insensitively.
	Blacklist []string
	// AllowedCharacters lists the categories every character must belong to.
	AllowedCharacters []Charset
}

// DefaultConfig returns the default policy: trimmed, 6 to 20 characters,
// letters, digits, underscores and dashes, and the built-in blacklist.
func DefaultConfig() Config {
	return Config{
		Trim:              true,
		Lowercase:         false,
		Uppercase:         false,
		MinLength:         6,
		MaxLength:         20,
		Blacklist:         blacklist.Default(),
		AllowedCharacters: []Charset{Letters, Numbers, Underscores, Dashes},
	}
}

func (c Config) clone() Config {
	c.Blacklist = slices.Clone(c.Blacklist)
	c.AllowedCharacters = slices.Clone(c.AllowedCharacters)
	return c
}

// Option overrides part of a policy. Scalar options replace one field;
// WithBlacklist and WithAllowedCharacters replace the whole list.
type Option func(*options)

type options struct {
	config Config
	logger *slog.Logger
}

func WithTrim(enabled bool) Option {
	return func(o *options) { o.config.Trim = enabled }
}

func WithLowercase(enabled bool) Option {
	return func(o *options) { o.config.Lowercase = enabled }
}

func WithUppercase(enabled bool) Option {
	return func(o *options) { o.config.Uppercase = enabled }
}

func WithMinLength(n int) Option {
	return func(o *options) { o.config.MinLength = n }
}

func WithMaxLength(n int) Option {
	return func(o *options) { o.config.MaxLength = n }
}

// WithBlacklist replaces the blacklist. Calling it without words disables
// blacklist matching.
func WithBlacklist(words ...string) Option {
	list := slices.Clone(words)
	if list == nil {
		list = []string{}
	}
	return func(o *options) { o.config.Blacklist = list }
}

// WithAllowedCharacters replaces the allowed categories. Calling it without
// categories makes every username fail the character check.
func WithAllowedCharacters(sets ...Charset) Option {
	list := slices.Clone(sets)
	if list == nil {
		list = []Charset{}
	}
	return func(o *options) { o.config.AllowedCharacters = list }
}

// WithConfig replaces the whole policy.
func WithConfig(cfg Config) Option {
	cfg = cfg.clone()
	return func(o *options) { o.config = cfg }
}

// WithLogger sets the logger rejected usernames are reported to at debug
// level. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Resolve applies opts on top of base and returns the result. base is not
// modified. No value is validated: negative or crossed lengths are kept as is.
func Resolve(base Config, opts ...Option) Config {
	return resolve(options{config: base}, opts...).config.clone()
}

func resolve(base options, opts ...Option) options {
	o := base
	o.config = base.config.clone()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
