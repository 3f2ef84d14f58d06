package frame

import (
	"runtime"
	"testing"
	"time"

	"github.com/tsawler/mrtd/ocr"
)

const (
	td3Line1 = "P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<"
	td3Line2 = "L898902C36UTO7408122F1204159ZE184226B<<<<<10"

	td2Line1 = "I<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<"
	td2Line2 = "D231458907UTO7408122F1204159<<<<<<<6"
)

func mrzLines(l ...string) []ocr.Line {
	lines := make([]ocr.Line, len(l))
	for i, text := range l {
		lines[i] = ocr.Line{Text: text, Confidence: 0.9}
	}
	return lines
}

// stepRecognizer hands control of each recognition to the test: the
// frame arrives on calls, and the test supplies the response on out.
type stepRecognizer struct {
	calls chan []byte
	out   chan []ocr.Line
}

func newStepRecognizer() *stepRecognizer {
	return &stepRecognizer{calls: make(chan []byte), out: make(chan []ocr.Line)}
}

func (r *stepRecognizer) RecognizeLines(frameData []byte) ([]ocr.Line, error) {
	r.calls <- frameData
	return <-r.out, nil
}

// respond services one pending recognition.
func (r *stepRecognizer) respond(t *testing.T, lines []ocr.Line) {
	t.Helper()
	select {
	case <-r.calls:
	case <-time.After(time.Second):
		t.Fatal("recognizer was never called")
	}
	r.out <- lines
}

// waitAccepted spins until the pump accepts frameData, i.e. until the
// previous recognition, including delivery, has fully finished.
func waitAccepted(t *testing.T, p *Pump, frameData []byte) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !p.Submit(frameData) {
		if time.Now().After(deadline) {
			t.Fatal("pump never became idle")
		}
		runtime.Gosched()
	}
}

func receiveResult(t *testing.T, p *Pump) Result {
	t.Helper()
	select {
	case res := <-p.Results():
		return res
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
		return Result{}
	}
}

func assertNoResult(t *testing.T, p *Pump) {
	t.Helper()
	select {
	case res := <-p.Results():
		t.Fatalf("unexpected result: %+v", res)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPump_DeliversResult(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)
	defer p.Close()

	if !p.Submit([]byte("frame-1")) {
		t.Fatal("Submit() = false on idle pump")
	}
	r.respond(t, mrzLines("UTOPIA PASSPORT", td3Line1, td3Line2, "CAN 482391"))

	res := receiveResult(t, p)
	if res.MRZ == nil {
		t.Fatal("result has no MRZ")
	}
	if !res.MRZ.Valid() {
		t.Error("specimen zone did not validate")
	}
	if res.MRZ.DocumentNumber != "L898902C3" {
		t.Errorf("DocumentNumber = %q", res.MRZ.DocumentNumber)
	}
	if want := td3Line1 + "\n" + td3Line2; res.Raw != want {
		t.Errorf("Raw = %q, want %q", res.Raw, want)
	}
	if res.CAN != "482391" {
		t.Errorf("CAN = %q, want 482391", res.CAN)
	}
}

func TestPump_CANOnly(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)
	defer p.Close()

	p.Submit([]byte("frame-1"))
	r.respond(t, mrzLines("UTOPIA ID CARD", "CAN 482391"))

	res := receiveResult(t, p)
	if res.MRZ != nil || res.Raw != "" {
		t.Errorf("expected CAN-only result, got %+v", res)
	}
	if res.CAN != "482391" {
		t.Errorf("CAN = %q, want 482391", res.CAN)
	}
}

func TestPump_DropsWhileInFlight(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)
	defer p.Close()

	if !p.Submit([]byte("frame-1")) {
		t.Fatal("first Submit() = false")
	}
	// Recognition is blocked inside the recognizer; further frames must
	// be dropped, not queued.
	if p.Submit([]byte("frame-2")) {
		t.Error("Submit() = true while a recognition is in flight")
	}
	if p.Submit([]byte("frame-3")) {
		t.Error("Submit() = true while a recognition is in flight")
	}

	r.respond(t, nil)
}

func TestPump_Deduplicates(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)
	defer p.Close()

	frame := mrzLines(td3Line1, td3Line2, "CAN 482391")

	p.Submit([]byte("frame-1"))
	r.respond(t, frame)
	res := receiveResult(t, p)
	if res.MRZ == nil {
		t.Fatal("first frame produced no MRZ")
	}

	// A held-steady camera: the identical zone and CAN on the next frame
	// must not produce a second delivery.
	waitAccepted(t, p, []byte("frame-2"))
	r.respond(t, frame)
	waitAccepted(t, p, []byte("frame-3"))
	r.respond(t, nil)
	assertNoResult(t, p)
}

func TestPump_ResetAllowsRedelivery(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)
	defer p.Close()

	frame := mrzLines(td3Line1, td3Line2)

	p.Submit([]byte("frame-1"))
	r.respond(t, frame)
	receiveResult(t, p)

	p.Reset()

	waitAccepted(t, p, []byte("frame-2"))
	r.respond(t, frame)
	res := receiveResult(t, p)
	if res.MRZ == nil {
		t.Error("no redelivery after Reset")
	}
}

func TestPump_LatestValueWins(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)
	defer p.Close()

	p.Submit([]byte("frame-1"))
	r.respond(t, mrzLines(td3Line1, td3Line2))

	// The consumer has not read the TD3 result yet; a newer distinct
	// result must replace it rather than block the pump.
	waitAccepted(t, p, []byte("frame-2"))
	r.respond(t, mrzLines(td2Line1, td2Line2))
	waitAccepted(t, p, []byte("frame-3"))
	r.respond(t, nil)

	res := receiveResult(t, p)
	if want := td2Line1 + "\n" + td2Line2; res.Raw != want {
		t.Errorf("Raw = %q, want the newer zone %q", res.Raw, want)
	}
	assertNoResult(t, p)
}

func TestPump_UnparseableCandidateDropped(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)
	defer p.Close()

	// MRZ-like lines of non-standard length: the heuristic assembles
	// them but exact-length detection rejects the block.
	p.Submit([]byte("frame-1"))
	r.respond(t, mrzLines(
		"P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<",
		"L898902C36UTO7408122F1204159<<<<<<",
	))
	waitAccepted(t, p, []byte("frame-2"))
	r.respond(t, nil)
	assertNoResult(t, p)
}

func TestPump_Close(t *testing.T) {
	r := newStepRecognizer()
	p := NewPump(r)

	p.Close()
	p.Close() // idempotent

	if p.Submit([]byte("frame-1")) {
		t.Error("Submit() = true on closed pump")
	}
	if _, open := <-p.Results(); open {
		t.Error("results channel still open after Close")
	}
}
