// Package usernamekit is a toolkit for validating user-chosen handles.
//
// The work happens in the sub-packages:
//
//   - pkg/username validates a candidate against a configurable policy and
//     reports every violated rule in one result.
//   - pkg/blacklist ships the built-in reserved and profanity word lists and
//     loads custom lists from JSON, YAML or plain-text files.
//   - pkg/validator is the rule engine the username checks are built on.
//   - pkg/sanitizer holds the string transforms used for normalization.
//   - pkg/config and pkg/logger provide environment configuration and
//     structured logging.
//
// Basic Usage:
//
//	res := username.Validate("  John_Doe-123 ")
//	if !res.IsValid {
//		for _, e := range res.Errors {
//			fmt.Println(e.Code, e.Message)
//		}
//	}
//
// Building a validator from USERNAME_* environment variables:
//
//	v, err := username.NewFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	res := v.Validate(input)
package usernamekit
