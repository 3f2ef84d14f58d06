package mrz

// checkDigitWeights cycle over the field by position, per ICAO 9303.
var checkDigitWeights = [3]int{7, 3, 1}

// charValue maps an MRZ character to its checksum value: digits map to
// themselves, A-Z to 10-35, and the '<' filler to 0.
func charValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 0
	}
}

// CheckDigit computes the ICAO 9303 check digit over a fixed-width
// field: the weighted sum of the character values, modulo 10, as a
// decimal digit character.
func CheckDigit(field string) byte {
	sum := 0
	for i := 0; i < len(field); i++ {
		sum += charValue(field[i]) * checkDigitWeights[i%3]
	}
	return byte('0' + sum%10)
}

// checksumOK reports whether the printed digit matches the computed one.
func checksumOK(field string, digit byte) bool {
	return CheckDigit(field) == digit
}
