package username

import "github.com/dmitrymomot/usernamekit/pkg/validator"

// Result is the outcome of a single validation.
type Result struct {
	// Username is the processed input after trimming and case folding.
	Username string `json:"username"`
	// Normalized is the canonical form of Username, see Canonical.
	Normalized string `json:"normalized"`
	// IsValid is true exactly when Errors is empty.
	IsValid bool `json:"isValid"`
	// Errors lists failed rules in the order minLength, maxLength,
	// blacklist, invalidCharacters.
	Errors validator.ValidationErrors `json:"errors"`
}

// Err returns the failures as an error, or nil for a valid username.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return r.Errors
}

// Has reports whether the given rule failed.
func (r Result) Has(code Code) bool {
	return r.Errors.HasCode(string(code))
}

// Codes returns the failed rule codes in reporting order.
func (r Result) Codes() []Code {
	codes := make([]Code, 0, len(r.Errors))
	for _, err := range r.Errors {
		codes = append(codes, Code(err.Code))
	}
	return codes
}
