// Package validator provides a small rule engine for building declarative
// validation pipelines.
//
// A Rule pairs a boolean Check function with the ValidationError reported
// when the check fails. Rules are evaluated with Collect, which runs every
// rule and returns the failures in rule order, or with Apply, which wraps the
// same result as an error value. There is no short-circuiting: every rule
// runs, so callers always receive the complete list of problems.
//
// # Usage
//
//	errs := validator.Collect(
//	    validator.Rule{
//	        Check: func() bool { return len(name) > 0 },
//	        Error: validator.ValidationError{Field: "name", Code: "required", Message: "name is required"},
//	    },
//	)
//	if !errs.IsEmpty() {
//	    // inspect errs.Codes(), errs.Get("name"), ...
//	}
//
// # Error Handling
//
// ValidationErrors implements error and Is, so callers can use
// errors.Is(err, validator.ErrValidationFailed) or ExtractValidationErrors to
// recover the individual failures. TranslationKey and TranslationValues carry
// the data needed to render a localized message.
//
// The package has no global state and is safe for concurrent use.
package validator
