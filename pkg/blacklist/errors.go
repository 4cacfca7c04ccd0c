package blacklist

import "errors"

var (
	// ErrUnsupportedFormat is returned for word list files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported word list format")

	// ErrParsingWordList is returned when a word list document cannot be decoded.
	ErrParsingWordList = errors.New("failed to parse word list")

	// ErrReadingWordList is returned when a word list source cannot be read.
	ErrReadingWordList = errors.New("failed to read word list")
)
