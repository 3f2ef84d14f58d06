package ocr

// DefaultMinConfidence is the floor below which recognized lines are
// discarded before they reach the extraction heuristic. Lines the engine
// itself doubts are worse than no lines: they poison candidate scoring.
const DefaultMinConfidence = 0.4

// MRZWhitelist is the complete character set a machine-readable zone can
// contain. Restricting the engine to it removes whole classes of
// misreads (O/0 aside).
const MRZWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789<"

// Line is a single recognized text line with the engine's confidence,
// scaled to [0,1].
type Line struct {
	Text       string
	Confidence float64
}

// Texts returns just the text of each line, in input order.
func Texts(lines []Line) []string {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	return texts
}
