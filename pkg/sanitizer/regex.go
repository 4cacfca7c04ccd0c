package sanitizer

import "regexp"

var (
	whitespaceRegex      = regexp.MustCompile(`\s+`)
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)
