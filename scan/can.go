package scan

import "strings"

// canLabels hint that a line carries the card access number.
var canLabels = []string{"CAN", "CARD", "ACCESS"}

// ExtractCAN finds the printed six-digit card access number in one
// frame's recognized lines. Lines containing '<' are skipped outright:
// the CAN is printed outside the machine-readable zone. Labeled lines
// (CAN/CARD/ACCESS) are preferred; if none of them carries a six-digit
// run, every remaining line is scanned in input order. Absence is not an
// error, most documents simply have no CAN.
func ExtractCAN(lines []string) (string, bool) {
	var plain []string
	for _, line := range lines {
		if strings.Contains(line, "<") {
			continue
		}
		plain = append(plain, line)
	}

	for _, line := range plain {
		if !labeled(line) {
			continue
		}
		if can, ok := sixDigitRun(line); ok {
			return can, true
		}
	}
	for _, line := range plain {
		if can, ok := sixDigitRun(line); ok {
			return can, true
		}
	}
	return "", false
}

func labeled(line string) bool {
	upper := strings.ToUpper(line)
	for _, label := range canLabels {
		if strings.Contains(upper, label) {
			return true
		}
	}
	return false
}

// sixDigitRun returns the first maximal digit run of exactly six digits.
// Longer runs are rejected whole: a date like 20251231 must not yield a
// phantom CAN.
func sixDigitRun(text string) (string, bool) {
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] >= '0' && text[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start == 6 {
			return text[start:i], true
		}
		start = -1
	}
	return "", false
}
