package mrtd

import (
	"errors"
	"testing"

	"github.com/tsawler/mrtd/format"
)

const (
	td3Line1 = "P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<"
	td3Line2 = "L898902C36UTO7408122F1204159ZE184226B<<<<<10"
)

func TestParse(t *testing.T) {
	r, err := Parse(td3Line1 + "\n" + td3Line2)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if r.Format != format.TD3 || !r.Valid() {
		t.Errorf("Format = %v, Valid = %v", r.Format, r.Valid())
	}
	if want := "L898902C3674081221204159"; r.Key() != want {
		t.Errorf("Key() = %q, want %q", r.Key(), want)
	}
}

func TestParse_Error(t *testing.T) {
	if _, err := Parse("too short"); !errors.Is(err, format.ErrNotEnoughLines) {
		t.Errorf("Parse() error = %v, want ErrNotEnoughLines", err)
	}
}

func TestScan(t *testing.T) {
	lines := []string{
		"REPUBLIC OF UTOPIA",
		td3Line1,
		td3Line2,
		"CAN 482391",
	}

	res, ok := Scan(lines)
	if !ok {
		t.Fatal("Scan() found nothing")
	}
	if res.MRZ == nil || !res.MRZ.Valid() {
		t.Fatal("Scan() did not produce a valid zone")
	}
	if res.MRZ.Surname != "ERIKSSON" {
		t.Errorf("Surname = %q", res.MRZ.Surname)
	}
	if want := td3Line1 + "\n" + td3Line2; res.Raw != want {
		t.Errorf("Raw = %q, want %q", res.Raw, want)
	}
	if res.CAN != "482391" {
		t.Errorf("CAN = %q, want 482391", res.CAN)
	}
}

func TestScan_Nothing(t *testing.T) {
	if res, ok := Scan([]string{"just", "noise"}); ok {
		t.Errorf("Scan() = %+v, want none", res)
	}
}

func TestScanWithOptions_RequireValid(t *testing.T) {
	corrupted := []byte(td3Line2)
	corrupted[0] = 'M' // breaks the document number check digit
	lines := []string{td3Line1, string(corrupted)}

	opts := DefaultScanOptions()
	opts.RequireValid = true
	if res, ok := ScanWithOptions(lines, opts); ok {
		t.Errorf("ScanWithOptions() = %+v, want none for failing check digits", res)
	}

	// The default is lenient: the zone comes back with failing flags.
	res, ok := Scan(lines)
	if !ok || res.MRZ == nil {
		t.Fatal("Scan() rejected a structurally sound zone")
	}
	if res.MRZ.Valid() {
		t.Error("corrupted zone validated")
	}
}

func TestScanWithOptions_NoCAN(t *testing.T) {
	opts := DefaultScanOptions()
	opts.ExtractCAN = false

	res, ok := ScanWithOptions([]string{td3Line1, td3Line2, "CAN 482391"}, opts)
	if !ok {
		t.Fatal("ScanWithOptions() found nothing")
	}
	if res.CAN != "" {
		t.Errorf("CAN = %q, want empty with extraction disabled", res.CAN)
	}
}

func TestMust(t *testing.T) {
	r := Must(Parse(td3Line1 + "\n" + td3Line2))
	if r.DocumentNumber != "L898902C3" {
		t.Errorf("DocumentNumber = %q", r.DocumentNumber)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(Parse("nope"))
}
