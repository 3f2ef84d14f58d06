package frame

import (
	"sync"

	"github.com/tsawler/mrtd/mrz"
	"github.com/tsawler/mrtd/ocr"
	"github.com/tsawler/mrtd/scan"
)

// Recognizer is the OCR collaborator: it turns one camera frame into
// recognized text lines, already filtered to the engine's confidence
// floor. *ocr.Client satisfies it when built with the ocr tag.
type Recognizer interface {
	RecognizeLines(frameData []byte) ([]ocr.Line, error)
}

// Result is one distinct scan outcome.
type Result struct {
	MRZ *mrz.Result // parsed zone; nil when only a CAN was found
	Raw string      // assembled MRZ block as fed to the parser
	CAN string      // six-digit card access number, empty when absent
}

// Pump coordinates per-frame scanning. Create one with NewPump; the zero
// value is not usable.
type Pump struct {
	recognizer Recognizer
	heuristic  scan.Config

	mu       sync.Mutex
	inFlight bool
	closed   bool
	lastRaw  string
	lastCAN  string

	results chan Result
}

// NewPump returns a pump that recognizes frames with r and assembles
// candidates with the default heuristic tunables.
func NewPump(r Recognizer) *Pump {
	return &Pump{
		recognizer: r,
		heuristic:  scan.DefaultConfig(),
		results:    make(chan Result, 1),
	}
}

// Results is the pump's output. At most one result is ever pending; a
// newer result replaces an unread one. The channel is closed by Close.
func (p *Pump) Results() <-chan Result {
	return p.results
}

// Submit admits one frame for recognition and returns immediately. It
// reports false when the frame was dropped: either a recognition is
// already in flight or the pump is closed. Recognition and extraction
// run on their own goroutine; at most one runs at a time.
func (p *Pump) Submit(frameData []byte) bool {
	p.mu.Lock()
	if p.inFlight || p.closed {
		p.mu.Unlock()
		return false
	}
	p.inFlight = true
	p.mu.Unlock()

	go p.process(frameData)
	return true
}

// Reset clears the de-duplication state so the next frame can re-deliver
// a result identical to the last one. Call it when a new scanning
// session starts.
func (p *Pump) Reset() {
	p.mu.Lock()
	p.lastRaw, p.lastCAN = "", ""
	p.mu.Unlock()
}

// Close stops the pump and closes the results channel. Frames submitted
// after Close are dropped; a recognition already in flight finishes but
// its result is discarded.
func (p *Pump) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.results)
}

func (p *Pump) process(frameData []byte) {
	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	lines, err := p.recognizer.RecognizeLines(frameData)
	if err != nil || len(lines) == 0 {
		return
	}
	texts := ocr.Texts(lines)

	var res Result
	if block, ok := p.heuristic.Candidate(texts); ok {
		// Structural parse failures are expected on most frames; the
		// frame is simply discarded and the next one gets a clean try.
		if parsed, err := mrz.Parse(block); err == nil {
			res.MRZ = parsed
			res.Raw = block
		}
	}
	if can, ok := scan.ExtractCAN(texts); ok {
		res.CAN = can
	}
	if res.MRZ == nil && res.CAN == "" {
		return
	}
	p.deliver(res)
}

// deliver suppresses repeats of the previous result and pushes with
// latest-value semantics. A held-steady camera produces the same zone on
// every frame; the consumer hears about it once.
func (p *Pump) deliver(res Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if res.Raw == p.lastRaw && res.CAN == p.lastCAN {
		return
	}
	p.lastRaw, p.lastCAN = res.Raw, res.CAN

	select {
	case p.results <- res:
	default:
		// Consumer is behind: drop the stale pending result.
		select {
		case <-p.results:
		default:
		}
		p.results <- res
	}
}
