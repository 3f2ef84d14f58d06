// Package format provides structural MRZ layout detection for the mrtd library.
package format

import "errors"

// Format represents a machine-readable zone layout per ICAO Document 9303.
type Format int

const (
	// Unknown indicates an unrecognized layout.
	Unknown Format = iota
	// TD1 indicates the ID-1 (card-sized) layout: three lines of 30 characters.
	TD1
	// TD2 indicates the ID-2 layout: two lines of 36 characters.
	TD2
	// TD3 indicates the passport-booklet layout: two lines of 44 characters.
	TD3
)

// Detection errors. They are terminal for a given input: the caller should
// treat them as "not an MRZ" and move on to the next frame or input.
var (
	// ErrNotEnoughLines indicates fewer than two non-empty lines were supplied.
	ErrNotEnoughLines = errors.New("mrz: not enough lines")
	// ErrWrongLength indicates the line lengths match no known MRZ layout.
	ErrWrongLength = errors.New("mrz: line lengths match no MRZ layout")
	// ErrInvalidCharset indicates a line contains a character outside
	// A-Z, 0-9 and the '<' filler.
	ErrInvalidCharset = errors.New("mrz: invalid character in line")
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case TD1:
		return "TD1"
	case TD2:
		return "TD2"
	case TD3:
		return "TD3"
	default:
		return "Unknown"
	}
}

// LineCount returns the number of MRZ lines the layout carries.
func (f Format) LineCount() int {
	switch f {
	case TD1:
		return 3
	case TD2, TD3:
		return 2
	default:
		return 0
	}
}

// LineLength returns the exact length of each MRZ line in the layout.
func (f Format) LineLength() int {
	switch f {
	case TD1:
		return 30
	case TD2:
		return 36
	case TD3:
		return 44
	default:
		return 0
	}
}

// Detect decides the MRZ layout from line count and exact line lengths.
// Detection is purely structural: document-type letters are never
// consulted, since shape is authoritative per ICAO 9303. Every line must
// pass the charset gate before shape is considered, so an oversized line
// with a stray symbol reports ErrInvalidCharset, not ErrWrongLength.
func Detect(lines []string) (Format, error) {
	if len(lines) < 2 {
		return Unknown, ErrNotEnoughLines
	}
	for _, line := range lines {
		if !ValidCharset(line) {
			return Unknown, ErrInvalidCharset
		}
	}
	switch {
	case len(lines) == 3 && allLength(lines, 30):
		return TD1, nil
	case len(lines) == 2 && allLength(lines, 44):
		return TD3, nil
	case len(lines) == 2 && allLength(lines, 36):
		return TD2, nil
	}
	return Unknown, ErrWrongLength
}

// ValidCharset reports whether every byte of line is in the MRZ alphabet
// {A-Z, 0-9, '<'}.
func ValidCharset(line string) bool {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '<' {
			return false
		}
	}
	return true
}

func allLength(lines []string, length int) bool {
	for _, line := range lines {
		if len(line) != length {
			return false
		}
	}
	return true
}
