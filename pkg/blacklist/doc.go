// Package blacklist ships the built-in forbidden-word lists used by the
// username validator and loads custom lists from files.
//
// Default returns the reserved names (admin, root, support, route names and
// similar) followed by a profanity list. Entries are lowercase and are matched
// as substrings by the validator, so short entries catch a lot: "ass" also
// matches "class".
//
// Custom lists can be stored as a JSON array, a YAML sequence (or a mapping
// with a "words" key) or plain text with one word per line:
//
//	words, err := blacklist.LoadFile("config/blacklist.yaml")
//	if err != nil {
//	    return err
//	}
//	v := username.New(username.WithBlacklist(append(blacklist.Default(), words...)...))
//
// Loaded entries are trimmed, lowercased and deduplicated.
package blacklist
