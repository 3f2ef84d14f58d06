// Package frame drives frame-by-frame document scanning: it feeds camera
// frames to an OCR recognizer one at a time, runs the extraction
// heuristic over the recognized lines, and delivers each distinct result
// exactly once.
//
// The pump owns the only mutable state in the system. Frames submitted
// while a recognition is in flight are dropped, never queued, which
// bounds latency when the engine is slow. Results travel over a
// buffered latest-value channel: if the consumer falls behind, the stale
// pending result is replaced rather than piling up.
package frame
