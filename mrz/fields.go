package mrz

import (
	"strings"

	"github.com/tsawler/mrtd/format"
)

// extractors dispatches fixed-offset field extraction by detected layout.
// Extraction cannot fail: line lengths are proven at detection, so every
// slice below is in bounds. Check-digit mismatches are recorded, not
// returned.
var extractors = map[format.Format]func([]string) *Result{
	format.TD1: extractTD1,
	format.TD2: extractTD2,
	format.TD3: extractTD3,
}

// extractTD3 decodes the passport layout: two lines of 44 characters.
func extractTD3(lines []string) *Result {
	l1, l2 := lines[0], lines[1]

	r := &Result{
		Format:              format.TD3,
		DocumentType:        unfill(l1[0:2]),
		IssuingCountry:      unfill(l1[2:5]),
		DocumentNumber:      unfill(l2[0:9]),
		DocumentNumberRaw:   l2[0:9],
		DocumentNumberCheck: l2[9],
		Nationality:         unfill(l2[10:13]),
		BirthDate:           l2[13:19],
		BirthDateCheck:      l2[19],
		Sex:                 unfill(l2[20:21]),
		ExpiryDate:          l2[21:27],
		ExpiryDateCheck:     l2[27],
		OptionalData:        unfill(l2[28:42]),
	}
	r.Surname, r.GivenNames = splitName(l1[5:44])
	r.Checks = Checks{
		LineLengths:    true,
		Charset:        true,
		DocumentNumber: checksumOK(l2[0:9], l2[9]),
		BirthDate:      checksumOK(l2[13:19], l2[19]),
		ExpiryDate:     checksumOK(l2[21:27], l2[27]),
		OptionalData:   checksumOK(l2[28:42], l2[42]),
		Composite:      checksumOK(l2[0:10]+l2[13:20]+l2[21:28]+l2[28:43], l2[43]),
	}
	return r
}

// extractTD2 decodes the ID-2 layout: two lines of 36 characters. There
// is no check digit over the optional field, so that flag always passes.
func extractTD2(lines []string) *Result {
	l1, l2 := lines[0], lines[1]

	r := &Result{
		Format:              format.TD2,
		DocumentType:        unfill(l1[0:2]),
		IssuingCountry:      unfill(l1[2:5]),
		DocumentNumber:      unfill(l2[0:9]),
		DocumentNumberRaw:   l2[0:9],
		DocumentNumberCheck: l2[9],
		Nationality:         unfill(l2[10:13]),
		BirthDate:           l2[13:19],
		BirthDateCheck:      l2[19],
		Sex:                 unfill(l2[20:21]),
		ExpiryDate:          l2[21:27],
		ExpiryDateCheck:     l2[27],
		OptionalData:        unfill(l2[28:35]),
	}
	r.Surname, r.GivenNames = splitName(l1[5:36])
	r.Checks = Checks{
		LineLengths:    true,
		Charset:        true,
		DocumentNumber: checksumOK(l2[0:9], l2[9]),
		BirthDate:      checksumOK(l2[13:19], l2[19]),
		ExpiryDate:     checksumOK(l2[21:27], l2[27]),
		OptionalData:   true,
		Composite:      checksumOK(l2[0:10]+l2[13:20]+l2[21:28]+l2[28:35], l2[35]),
	}
	return r
}

// extractTD1 decodes the card layout: three lines of 30 characters. The
// document number lives on line one, dates on line two, and the whole of
// line three is the name field.
func extractTD1(lines []string) *Result {
	l1, l2, l3 := lines[0], lines[1], lines[2]

	r := &Result{
		Format:              format.TD1,
		DocumentType:        unfill(l1[0:2]),
		IssuingCountry:      unfill(l1[2:5]),
		DocumentNumber:      unfill(l1[5:14]),
		DocumentNumberRaw:   l1[5:14],
		DocumentNumberCheck: l1[14],
		Nationality:         unfill(l2[15:18]),
		BirthDate:           l2[0:6],
		BirthDateCheck:      l2[6],
		Sex:                 unfill(l2[7:8]),
		ExpiryDate:          l2[8:14],
		ExpiryDateCheck:     l2[14],
		OptionalData:        unfill(l1[15:30]),
		OptionalData2:       unfill(l2[18:29]),
	}
	r.Surname, r.GivenNames = splitName(l3)
	r.Checks = Checks{
		LineLengths:    true,
		Charset:        true,
		DocumentNumber: checksumOK(l1[5:14], l1[14]),
		BirthDate:      checksumOK(l2[0:6], l2[6]),
		ExpiryDate:     checksumOK(l2[8:14], l2[14]),
		OptionalData:   true,
		Composite:      checksumOK(l1[5:30]+l2[0:7]+l2[8:15]+l2[18:29], l2[29]),
	}
	return r
}

// splitName decodes an MRZ name field. The primary identifier (surname)
// and secondary identifier (given names) are separated by the first
// "<<"; within each, single '<' separates name parts and runs of filler
// collapse. A field with no "<<" holds only a surname.
func splitName(field string) (surname, given string) {
	primary, secondary, found := strings.Cut(field, "<<")
	if !found {
		return cleanNamePart(field), ""
	}
	return cleanNamePart(primary), cleanNamePart(secondary)
}

func cleanNamePart(part string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(part, "<", " ")), " ")
}

// unfill strips the '<' filler and surrounding whitespace from a raw
// field, producing the display form.
func unfill(field string) string {
	return strings.TrimSpace(strings.ReplaceAll(field, "<", ""))
}
