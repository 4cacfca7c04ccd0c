// Package sanitizer provides small string transforms for cleaning and
// normalising user input, together with Apply and Compose helpers for chaining
// them into pipelines.
//
// The transforms are Unicode aware: Trim also strips the zero width no-break
// space, ToLower and ToUpper use the Unicode default case mappings from
// golang.org/x/text/cases, and StripDiacritics runs an NFKD decomposition that
// removes combining marks.
//
//	normalize := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	    sanitizer.StripDiacritics,
//	    sanitizer.KeepASCIIAlphanumeric,
//	)
//
//	normalize("  Zoë_Smith! ") // "zoesmith"
//
// # Error handling
//
// None of the helpers returns an error. When a transformation cannot be
// applied the input is returned unchanged.
//
// All helpers are free of global mutable state and safe for concurrent use.
package sanitizer
