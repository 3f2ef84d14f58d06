// Package mrz parses and validates machine-readable zones per ICAO
// Document 9303.
//
// The entry point is [Parse], which takes an assembled two- or three-line
// zone, detects the layout (TD1, TD2 or TD3), slices the fixed-width
// fields, and verifies every check digit the layout carries. Structural
// problems (too few lines, wrong lengths, characters outside the MRZ
// alphabet) are returned as errors; check-digit mismatches are never
// errors, they are recorded as flags on [Checks] so a caller can
// distinguish "not an MRZ" from "an MRZ that was misread or tampered
// with".
//
// A [Result] is produced once and never mutated. The chip-access key for
// BAC/PACE is derived from it on demand via [Result.Key].
package mrz
