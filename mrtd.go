// Package mrtd extracts and validates machine-readable zone (MRZ)
// identity data from OCR output, per ICAO Document 9303. It understands
// passports (TD3), ID cards (TD1) and other travel documents (TD2).
//
// Validating an already-assembled zone:
//
//	result, err := mrtd.Parse(text)
//	if err != nil {
//	    // structurally not an MRZ
//	}
//	if result.Valid() {
//	    fmt.Println(result.Surname, result.DocumentNumber)
//	}
//
// Scanning one frame's worth of recognized lines:
//
//	if res, ok := mrtd.Scan(lines); ok {
//	    fmt.Println(res.MRZ.Key(), res.CAN)
//	}
//
// For continuous camera scanning with frame dropping and result
// de-duplication, see the frame package; for the Tesseract wrapper, see
// the ocr package.
package mrtd

import (
	"github.com/tsawler/mrtd/mrz"
	"github.com/tsawler/mrtd/scan"
)

// ScanResult is the outcome of scanning one frame's lines.
type ScanResult struct {
	MRZ *mrz.Result // parsed zone; nil when only a CAN was found
	Raw string      // assembled MRZ block, as fed to the parser
	CAN string      // six-digit card access number, empty when absent
}

// Parse validates and decodes an assembled MRZ string of two or three
// newline-delimited lines. It is the re-validation entry point: input
// that already looks like a zone, from a previous scan or a test vector,
// goes straight to the parser without the candidate heuristic.
func Parse(raw string) (*mrz.Result, error) {
	return mrz.Parse(raw)
}

// Scan runs the candidate heuristic and CAN extraction over one frame's
// recognized lines and parses whatever zone was assembled. It is a pure
// function: no state survives between calls. The second return value is
// false when the frame yields neither a parseable zone nor a CAN, which
// is the expected outcome for most frames.
func Scan(lines []string) (*ScanResult, bool) {
	return ScanWithOptions(lines, DefaultScanOptions())
}

// ScanWithOptions is Scan with explicit tunables.
func ScanWithOptions(lines []string, opts ScanOptions) (*ScanResult, bool) {
	res := &ScanResult{}

	if block, ok := opts.Heuristic.Candidate(lines); ok {
		if parsed, err := mrz.Parse(block); err == nil {
			if !opts.RequireValid || parsed.Valid() {
				res.MRZ = parsed
				res.Raw = block
			}
		}
	}
	if opts.ExtractCAN {
		if can, ok := scan.ExtractCAN(lines); ok {
			res.CAN = can
		}
	}

	if res.MRZ == nil && res.CAN == "" {
		return nil, false
	}
	return res, true
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := mrtd.Must(mrtd.Parse(text))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
