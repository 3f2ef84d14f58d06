package mrz

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/mrtd/format"
)

// Checks records the outcome of every checksum applied to a parsed zone.
// LineLengths and Charset are always true on a result returned by Parse;
// structural failures surface as errors instead of results.
type Checks struct {
	LineLengths    bool
	Charset        bool
	DocumentNumber bool
	BirthDate      bool
	ExpiryDate     bool
	OptionalData   bool
	Composite      bool
}

// Result is a parsed, checksum-annotated machine-readable zone. It is
// produced once by Parse and never mutated afterwards.
type Result struct {
	Format format.Format

	DocumentType   string // e.g. "P", "I", "ID"
	IssuingCountry string // ICAO three-letter code
	Surname        string
	GivenNames     string

	DocumentNumber      string // filler stripped
	DocumentNumberRaw   string // fixed width, exactly as printed
	DocumentNumberCheck byte

	Nationality string

	BirthDate      string // YYMMDD
	BirthDateCheck byte

	Sex string // "M", "F" or empty when unspecified

	ExpiryDate      string // YYMMDD
	ExpiryDateCheck byte

	OptionalData  string // filler stripped
	OptionalData2 string // second optional area, TD1 only

	Checks Checks
}

// Valid reports whether the zone can be trusted: line lengths, charset,
// and the document-number, birth-date and expiry-date check digits must
// all pass. The OptionalData and Composite flags are deliberately not
// consulted, for any layout; they are informational. Callers that want
// the stricter reading can inspect Checks directly.
func (r *Result) Valid() bool {
	c := r.Checks
	return c.LineLengths && c.Charset && c.DocumentNumber && c.BirthDate && c.ExpiryDate
}

// Key derives the MRZ key used to authenticate against the document chip
// (BAC/PACE): raw document number and its check digit, birth date and its
// check digit, expiry date and its check digit, concatenated. The key is
// recomputed on every call rather than stored, so it can never drift from
// the fields it is derived from.
func (r *Result) Key() string {
	var b strings.Builder
	b.Grow(len(r.DocumentNumberRaw) + len(r.BirthDate) + len(r.ExpiryDate) + 3)
	b.WriteString(r.DocumentNumberRaw)
	b.WriteByte(r.DocumentNumberCheck)
	b.WriteString(r.BirthDate)
	b.WriteByte(r.BirthDateCheck)
	b.WriteString(r.ExpiryDate)
	b.WriteByte(r.ExpiryDateCheck)
	return b.String()
}

// BirthTime resolves the two-digit birth year against the current date:
// a year after the current two-digit year belongs to the previous
// century. It returns an error when the field does not name a calendar
// date (which a passing check digit does not guarantee).
func (r *Result) BirthTime() (time.Time, error) {
	return resolveDate(r.BirthDate, true)
}

// ExpiryTime converts the expiry date to a time.Time. Expiry years always
// resolve to the 2000s: travel documents are not valid for decades.
func (r *Result) ExpiryTime() (time.Time, error) {
	return resolveDate(r.ExpiryDate, false)
}

func resolveDate(yymmdd string, past bool) (time.Time, error) {
	if len(yymmdd) != 6 {
		return time.Time{}, fmt.Errorf("mrz: date %q is not YYMMDD", yymmdd)
	}
	for i := 0; i < 6; i++ {
		if yymmdd[i] < '0' || yymmdd[i] > '9' {
			return time.Time{}, fmt.Errorf("mrz: date %q is not YYMMDD", yymmdd)
		}
	}
	num := func(s string) int {
		n := 0
		for i := 0; i < len(s); i++ {
			n = n*10 + int(s[i]-'0')
		}
		return n
	}
	yy, mm, dd := num(yymmdd[0:2]), num(yymmdd[2:4]), num(yymmdd[4:6])

	century := 2000
	if past && yy > time.Now().Year()%100 {
		century = 1900
	}

	t := time.Date(century+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if int(t.Month()) != mm || t.Day() != dd {
		return time.Time{}, fmt.Errorf("mrz: date %q is not a calendar date", yymmdd)
	}
	return t, nil
}
