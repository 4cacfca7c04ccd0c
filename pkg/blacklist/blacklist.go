package blacklist

import "slices"

// Default returns the built-in blacklist: the reserved names followed by the
// profanity list. Every call returns a fresh slice.
func Default() []string {
	return slices.Concat(reserved, profanity)
}

// Reserved returns a copy of the reserved-name list.
func Reserved() []string {
	return slices.Clone(reserved)
}

// Profanity returns a copy of the profanity list.
func Profanity() []string {
	return slices.Clone(profanity)
}
