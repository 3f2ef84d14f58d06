package mrtd

import "github.com/tsawler/mrtd/scan"

// ScanOptions holds configuration for Scan.
type ScanOptions struct {
	// Heuristic holds the candidate-assembly tunables.
	Heuristic scan.Config

	// ExtractCAN controls whether the card access number pass runs.
	ExtractCAN bool

	// RequireValid discards a parsed zone whose primary check digits
	// fail, instead of returning it with failing flags.
	RequireValid bool
}

// DefaultScanOptions returns the options used by Scan.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Heuristic:  scan.DefaultConfig(),
		ExtractCAN: true,
	}
}
