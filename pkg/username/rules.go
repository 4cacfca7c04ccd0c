package username

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/usernamekit/pkg/sanitizer"
	"github.com/dmitrymomot/usernamekit/pkg/validator"
)

// Code identifies a username rule.
type Code string

const (
	CodeMinLength         Code = "minLength"
	CodeMaxLength         Code = "maxLength"
	CodeBlacklist         Code = "blacklist"
	CodeInvalidCharacters Code = "invalidCharacters"
)

const field = "username"

// policy is a Config prepared for repeated evaluation.
type policy struct {
	config    Config
	blacklist []string
	allowed   *unicode.RangeTable
}

func compile(cfg Config) policy {
	words := make([]string, len(cfg.Blacklist))
	for i, w := range cfg.Blacklist {
		words[i] = sanitizer.ToLower(w)
	}

	return policy{
		config:    cfg,
		blacklist: words,
		allowed:   allowTable(cfg.AllowedCharacters),
	}
}

// rules returns the checks for a processed username in reporting order.
func (p policy) rules(name string) []validator.Rule {
	length := utf8.RuneCountInString(name)

	return []validator.Rule{
		minLengthRule(length, p.config.MinLength),
		maxLengthRule(length, p.config.MaxLength),
		blacklistRule(sanitizer.ToLower(name), p.blacklist),
		charsetRule(name, p.allowed),
	}
}

func minLengthRule(length, min int) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return length >= min
		},
		Error: validator.ValidationError{
			Field:          field,
			Code:           string(CodeMinLength),
			Message:        fmt.Sprintf("Username must be at least %d characters long.", min),
			TranslationKey: "validation.username.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func maxLengthRule(length, max int) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return length <= max
		},
		Error: validator.ValidationError{
			Field:          field,
			Code:           string(CodeMaxLength),
			Message:        fmt.Sprintf("Username must be at most %d characters long.", max),
			TranslationKey: "validation.username.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// blacklistRule fails once no matter how many words match.
// An empty word is a substring of everything and rejects every username.
func blacklistRule(folded string, words []string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return !slices.ContainsFunc(words, func(w string) bool {
				return strings.Contains(folded, w)
			})
		},
		Error: validator.ValidationError{
			Field:          field,
			Code:           string(CodeBlacklist),
			Message:        "Username contains a blacklisted word.",
			TranslationKey: "validation.username.blacklist",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// charsetRule requires at least one character and every character inside allowed.
func charsetRule(name string, allowed *unicode.RangeTable) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			if name == "" {
				return false
			}
			for _, r := range name {
				if !unicode.Is(allowed, r) {
					return false
				}
			}
			return true
		},
		Error: validator.ValidationError{
			Field:          field,
			Code:           string(CodeInvalidCharacters),
			Message:        "Username contains invalid characters.",
			TranslationKey: "validation.username.invalid_characters",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
