// Package username validates candidate usernames against a configurable
// policy and reports every violated rule at once.
//
// Validation is a single pass: the input is normalized (trim, lowercase,
// uppercase, each optional and applied in that order), then four rules run
// unconditionally against the processed string:
//
//   - minLength / maxLength compare the length in code points with the
//     configured bounds.
//   - blacklist rejects usernames that contain any forbidden word as a
//     case-insensitive substring, reporting a single error however many match.
//   - invalidCharacters requires a non-empty string made only of characters
//     from the allowed categories (letters, numbers, underscores, dashes,
//     spaces, emojis).
//
// # Usage
//
//	res := username.Validate("  John_Doe-123 ")
//	res.Username   // "John_Doe-123"
//	res.Normalized // "johndoe123"
//	res.IsValid    // true
//
//	v := username.New(username.WithLowercase(true), username.WithMinLength(3))
//	res = v.Validate("Al")
//	res.Has(username.CodeMinLength) // true
//
// Options given to Validator.Validate are merged onto the validator's own
// policy for that call only. Scalar options replace one field; WithBlacklist
// and WithAllowedCharacters replace the whole list.
//
// # Configuration
//
// NewFromEnv reads USERNAME_TRIM, USERNAME_LOWERCASE, USERNAME_UPPERCASE,
// USERNAME_MIN_LENGTH, USERNAME_MAX_LENGTH, USERNAME_BLACKLIST,
// USERNAME_BLACKLIST_FILE and USERNAME_ALLOWED_CHARACTERS. Unset variables
// keep their defaults.
//
// # Errors
//
// Rule failures are values in Result.Errors, never Go errors. Result.Err
// wraps them as validator.ValidationErrors for callers that prefer an error
// return. Out-of-range settings such as negative lengths are applied
// literally.
//
// A Validator never changes after New and can be shared between goroutines.
package username
