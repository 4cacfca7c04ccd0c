package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single failed rule with translation support.
// Code identifies the rule in a machine-readable way and is stable across
// message wording changes.
type ValidationError struct {
	Field             string         `json:"field"`
	Code              string         `json:"code"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// ValidationErrors represents an ordered collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether any error carries the given code.
func (ve ValidationErrors) HasCode(code string) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Codes returns error codes in the order the errors were collected.
func (ve ValidationErrors) Codes() []string {
	codes := make([]string, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Collect runs every rule and returns the errors of the failed ones in rule
// order. The result is never nil, so an all-pass run yields an empty slice.
func Collect(rules ...Rule) ValidationErrors {
	errs := make(ValidationErrors, 0, len(rules))

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	return errs
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := Collect(rules...)
	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
