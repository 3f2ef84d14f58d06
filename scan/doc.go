// Package scan assembles MRZ candidates and card access numbers from
// noisy OCR output.
//
// OCR engines deliver an unordered bag of recognized lines: partial,
// misread, and interleaved with unrelated text from elsewhere on the
// document. [ExtractCandidate] selects the lines that look most like a
// machine-readable zone and joins them into a block for the parser;
// [ExtractCAN] independently hunts for the printed six-digit card access
// number. Both are pure functions of their input and never fail: most
// frames simply yield nothing.
//
// No fuzzy length correction is attempted. The parser requires exact line
// lengths, so a frame whose best candidate is a character short is
// discarded and the next frame gets its chance.
package scan
