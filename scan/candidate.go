package scan

import (
	"sort"
	"strings"

	"github.com/tsawler/mrtd/mrz"
)

// Config holds the candidate-assembly tunables.
type Config struct {
	// Minimum normalized length for a line to be considered MRZ-like
	MinLineLength int

	// Maximum length for a TD1 (30-character layout) candidate line
	TD1MaxLineLength int

	// Minimum length for a TD2/TD3 (36/44-character layout) candidate line
	TD2MinLineLength int
}

// DefaultConfig returns the tunables used by ExtractCandidate.
func DefaultConfig() Config {
	return Config{
		MinLineLength:    25,
		TD1MaxLineLength: 35,
		TD2MinLineLength: 30,
	}
}

// candidate is a normalized line with its score. Candidates live for one
// frame and never escape this package.
type candidate struct {
	text  string
	score int
}

// score favors filler density first and length second: MRZ lines are the
// only place on a document where '<' appears in bulk.
func score(text string) int {
	return strings.Count(text, "<")*10 + len(text)
}

// ExtractCandidate runs the assembly heuristic with DefaultConfig.
func ExtractCandidate(lines []string) (string, bool) {
	return DefaultConfig().Candidate(lines)
}

// Candidate selects and assembles the most likely MRZ block from one
// frame's recognized lines. A three-line (TD1) grouping is attempted
// first among short lines; failing that, a two-line (TD2/TD3) grouping
// among all MRZ-like lines. The chosen lines are emitted in score order,
// joined by newlines, ready for the parser. The second return value is
// false when the frame holds no plausible zone.
func (c Config) Candidate(lines []string) (string, bool) {
	var mrzLike []candidate
	for _, raw := range lines {
		n := mrz.NormalizeLine(raw)
		if len(n) >= c.MinLineLength && strings.Contains(n, "<<") {
			mrzLike = append(mrzLike, candidate{text: n, score: score(n)})
		}
	}

	if block, ok := c.assembleTD1(mrzLike); ok {
		return block, true
	}
	return c.assembleTD23(mrzLike)
}

// assembleTD1 groups three short lines. The top three by score fill the
// zone's lines in rank order, not detection order; a high-scoring noise
// line can therefore displace a true document line. That trade is
// accepted: exact-length format detection rejects the mismatch and the
// frame is retried.
func (c Config) assembleTD1(mrzLike []candidate) (string, bool) {
	var short []candidate
	for _, cand := range mrzLike {
		if len(cand.text) <= c.TD1MaxLineLength {
			short = append(short, cand)
		}
	}
	if len(short) < 3 {
		return "", false
	}

	rank(short)
	top := short[:3]
	for _, cand := range top {
		if len(cand.text) < c.MinLineLength {
			return "", false
		}
	}
	return top[0].text + "\n" + top[1].text + "\n" + top[2].text, true
}

// assembleTD23 groups the two highest-scoring lines for the two-line
// layouts.
func (c Config) assembleTD23(mrzLike []candidate) (string, bool) {
	if len(mrzLike) < 2 {
		return "", false
	}

	rank(mrzLike)
	top := mrzLike[:2]
	for _, cand := range top {
		if len(cand.text) < c.TD2MinLineLength {
			return "", false
		}
	}
	return top[0].text + "\n" + top[1].text, true
}

// rank orders candidates by score, descending. The sort is stable so
// equal scores keep their input order.
func rank(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score > cands[j].score
	})
}
