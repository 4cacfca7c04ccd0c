package blacklist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/usernamekit/pkg/sanitizer"
)

// Format identifies the encoding of a word list document.
type Format string

const (
	// FormatJSON is a JSON array of strings.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence, or a mapping with a "words" sequence.
	FormatYAML Format = "yaml"
	// FormatText is one word per line; blank lines and lines starting with '#' are skipped.
	FormatText Format = "text"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt", ".list", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads a word list from disk, detecting the format by extension.
func LoadFile(path string) ([]string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingWordList, err)
	}

	return Parse(data, format)
}

// Read decodes a word list from r.
func Read(r io.Reader, format Format) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrReadingWordList, err)
	}
	return Parse(data, format)
}

// Parse decodes a word list document. Entries are lowercased with inner
// whitespace collapsed and control characters removed. Empty entries are
// dropped and duplicates keep their first position.
func Parse(data []byte, format Format) ([]string, error) {
	var words []string

	switch format {
	case FormatJSON, FormatYAML:
		// JSON arrays are valid YAML flow sequences, so one decoder serves both.
		list, err := decodeYAML(data)
		if err != nil {
			return nil, errors.Join(ErrParsingWordList, err)
		}
		words = list
	case FormatText:
		list, err := decodeText(data)
		if err != nil {
			return nil, errors.Join(ErrParsingWordList, err)
		}
		words = list
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return clean(words), nil
}

func decodeYAML(data []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc struct {
		Words []string `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Words, nil
}

func decodeText(data []byte) ([]string, error) {
	var list []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := sanitizer.Trim(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return list, scanner.Err()
}

func clean(words []string) []string {
	result := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = sanitizer.Apply(w,
			sanitizer.CollapseWhitespace,
			sanitizer.RemoveControlChars,
			sanitizer.ToLower,
		)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		result = append(result, w)
	}
	return result
}
