package username_test

import (
	"fmt"

	"github.com/dmitrymomot/usernamekit/pkg/username"
)

func ExampleValidate() {
	res := username.Validate("  John_Doe-123 ")

	fmt.Println(res.Username)
	fmt.Println(res.Normalized)
	fmt.Println(res.IsValid)
	// Output:
	// John_Doe-123
	// johndoe123
	// true
}

func ExampleValidator_Validate() {
	v := username.New(username.WithLowercase(true), username.WithBlacklist("spam"))

	res := v.Validate("Spam!")
	for _, code := range res.Codes() {
		fmt.Println(code)
	}
	// Output:
	// minLength
	// blacklist
	// invalidCharacters
}

func ExampleValidator_Validate_overrides() {
	v := username.New()

	res := v.Validate("Jo", username.WithMinLength(2))

	fmt.Println(res.IsValid)
	fmt.Println(v.Validate("Jo").IsValid)
	// Output:
	// true
	// false
}
