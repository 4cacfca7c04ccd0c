package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usernamekit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "username",
			Message: "is too short",
		})
		assert.Equal(t, "validation failed: username: is too short", errs.Error())
	})

	t.Run("keeps collection order in message", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "username", Message: "is too short"})
		errs.Add(validator.ValidationError{Field: "username", Message: "has invalid characters"})

		assert.Equal(t,
			"validation failed: username: is too short; username: has invalid characters",
			errs.Error(),
		)
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "username", Code: "minLength", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "username", Code: "blacklist", Message: "forbidden"})

	t.Run("has field", func(t *testing.T) {
		assert.True(t, errs.Has("username"))
		assert.False(t, errs.Has("email"))
	})

	t.Run("has code", func(t *testing.T) {
		assert.True(t, errs.HasCode("minLength"))
		assert.True(t, errs.HasCode("blacklist"))
		assert.False(t, errs.HasCode("maxLength"))
	})

	t.Run("get messages for field", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "forbidden"}, errs.Get("username"))
		assert.Empty(t, errs.Get("email"))
	})

	t.Run("codes in order", func(t *testing.T) {
		assert.Equal(t, []string{"minLength", "blacklist"}, errs.Codes())
	})

	t.Run("empty collection", func(t *testing.T) {
		var empty validator.ValidationErrors
		assert.True(t, empty.IsEmpty())
		assert.Empty(t, empty.Codes())
		assert.False(t, errs.IsEmpty())
	})
}

func TestCollect(t *testing.T) {
	t.Run("returns empty non-nil slice when all rules pass", func(t *testing.T) {
		errs := validator.Collect(
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Code: "a"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Code: "b"}},
		)
		require.NotNil(t, errs)
		assert.Empty(t, errs)
	})

	t.Run("runs every rule and keeps rule order", func(t *testing.T) {
		calls := 0
		check := func(ok bool) func() bool {
			return func() bool {
				calls++
				return ok
			}
		}

		errs := validator.Collect(
			validator.Rule{Check: check(false), Error: validator.ValidationError{Code: "first"}},
			validator.Rule{Check: check(true), Error: validator.ValidationError{Code: "second"}},
			validator.Rule{Check: check(false), Error: validator.ValidationError{Code: "third"}},
		)

		assert.Equal(t, 3, calls)
		assert.Equal(t, []string{"first", "third"}, errs.Codes())
	})

	t.Run("handles no rules", func(t *testing.T) {
		assert.Empty(t, validator.Collect())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(validator.Rule{
			Check: func() bool { return true },
			Error: validator.ValidationError{Field: "username", Message: "required"},
		})
		assert.NoError(t, err)
	})

	t.Run("returns ValidationErrors when rules fail", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{
				Check: func() bool { return false },
				Error: validator.ValidationError{
					Field:             "username",
					Code:              "minLength",
					Message:           "too short",
					TranslationKey:    "validation.username.min_length",
					TranslationValues: map[string]any{"min": 6},
				},
			},
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.username.min_length", verrs[0].TranslationKey)
		assert.Equal(t, 6, verrs[0].TranslationValues["min"])
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "username", Message: "is required"})

		wrapped := fmt.Errorf("register: %w", errs)
		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("username"))
	})

	t.Run("returns nil for non-ValidationErrors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestIsValidationError(t *testing.T) {
	t.Run("returns true for ValidationErrors", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "username", Message: "is required"}}
		assert.True(t, validator.IsValidationError(errs))
	})

	t.Run("returns false for regular error", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(errors.New("regular error")))
	})

	t.Run("returns false for nil error", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestErrValidationFailed(t *testing.T) {
	t.Run("matches non-empty errors", func(t *testing.T) {
		var err error = validator.ValidationErrors{{Field: "username", Message: "bad"}}
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorIs(t, fmt.Errorf("wrap: %w", err), validator.ErrValidationFailed)
	})

	t.Run("does not match empty errors", func(t *testing.T) {
		var err error = validator.ValidationErrors{}
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
	})
}
