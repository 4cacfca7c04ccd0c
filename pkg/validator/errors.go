package validator

import "errors"

// ErrValidationFailed is returned when validation fails but no specific error is provided.
var ErrValidationFailed = errors.New("validation failed")

// Is lets errors.Is(err, ErrValidationFailed) match any non-empty ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}
