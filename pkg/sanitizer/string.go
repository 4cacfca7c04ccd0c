package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing Unicode whitespace, including the zero
// width no-break space (U+FEFF) that strings.TrimSpace keeps.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimmable)
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ToLower applies Unicode default lowercasing.
// Casers are stateful, so a fresh one is built per call.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToUpper applies Unicode default uppercasing.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// TrimToLower removes surrounding whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return ToLower(Trim(s))
}

// StripDiacritics decomposes s (NFKD), drops nonspacing marks and recomposes
// the rest, so "Zoë" becomes "Zoe" and fullwidth "Ａ" becomes "A".
// On transformation failure the input is returned unchanged.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// KeepASCIIAlphanumeric keeps only the ASCII letters and digits.
func KeepASCIIAlphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims.
func CollapseWhitespace(s string) string {
	return Trim(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops Unicode control characters.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
