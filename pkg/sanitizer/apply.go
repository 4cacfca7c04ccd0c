package sanitizer

// Transform is a single string sanitization step.
type Transform func(string) string

// Apply runs transforms over value from left to right.
// A nil transform is skipped.
func Apply(value string, transforms ...Transform) string {
	for _, transform := range transforms {
		if transform != nil {
			value = transform(value)
		}
	}

	return value
}

// Compose bundles transforms into one reusable Transform.
func Compose(transforms ...Transform) Transform {
	return func(value string) string {
		return Apply(value, transforms...)
	}
}

// When returns t if cond holds and nil otherwise, which Apply skips.
// It keeps conditional pipelines declarative:
//
//	sanitizer.Apply(s, sanitizer.When(trim, sanitizer.Trim), sanitizer.ToLower)
func When(cond bool, t Transform) Transform {
	if cond {
		return t
	}
	return nil
}
