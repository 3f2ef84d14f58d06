package mrz

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes accented characters and strips the combining
// marks, so OCR output like "É" survives the charset filter as "E".
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares raw text for parsing: it folds diacritics,
// uppercases, and strips whitespace other than newlines. Characters
// outside the MRZ alphabet are kept so they can trip the charset gate
// during detection. Normalization is total; it never fails.
func Normalize(text string) string {
	text = fold(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLine normalizes a single recognized line for the candidate
// heuristic: fold, uppercase, and keep only the MRZ alphabet
// {A-Z, 0-9, '<'}. Everything else, newlines included, is discarded.
// This is the one rule the heuristic shares with the parser.
func NormalizeLine(text string) string {
	text = fold(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '<' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func fold(text string) string {
	if folded, _, err := transform.String(foldMarks, text); err == nil {
		text = folded
	}
	return strings.ToUpper(text)
}
