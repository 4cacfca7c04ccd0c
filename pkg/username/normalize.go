package username

import "github.com/dmitrymomot/usernamekit/pkg/sanitizer"

// Normalize produces the processed username the rules run against:
// trim, then lowercase, then uppercase, each only when enabled in cfg.
func Normalize(raw string, cfg Config) string {
	return sanitizer.Apply(raw,
		sanitizer.When(cfg.Trim, sanitizer.Trim),
		sanitizer.When(cfg.Lowercase, sanitizer.ToLower),
		sanitizer.When(cfg.Uppercase, sanitizer.ToUpper),
	)
}

// Canonical reduces a username to lowercase ASCII letters and digits, with
// diacritics folded to their base letters. "  U-ser_Na⚡️me!  " and
// "username" share the canonical form "username", which makes it a suitable
// key for detecting look-alike registrations.
func Canonical(name string) string {
	return canonical(name)
}

var canonical = sanitizer.Compose(
	sanitizer.ToLower,
	sanitizer.StripDiacritics,
	sanitizer.KeepASCIIAlphanumeric,
)
