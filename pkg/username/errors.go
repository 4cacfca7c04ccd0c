package username

import "errors"

// ErrUnknownCharset is returned when a character category name is not recognized.
var ErrUnknownCharset = errors.New("unknown character set")
