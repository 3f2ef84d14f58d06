package mrz

import (
	"strings"

	"github.com/tsawler/mrtd/format"
)

// Parse validates and decodes an assembled machine-readable zone of two
// or three newline-delimited lines. Whitespace other than line breaks is
// stripped and letters are uppercased before detection.
//
// Structural failures return one of the format package's sentinel
// errors (format.ErrNotEnoughLines, format.ErrWrongLength,
// format.ErrInvalidCharset), matchable with errors.Is. Check-digit
// mismatches are not errors: they are recorded on the result's Checks.
func Parse(raw string) (*Result, error) {
	normalized := Normalize(raw)

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	f, err := format.Detect(lines)
	if err != nil {
		return nil, err
	}
	return extractors[f](lines), nil
}
