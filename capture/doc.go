// Package capture holds the paired input/output pin vectors recorded
// from a live device, and reads the three capture-file forms the
// walker firmware emits (raw binary, ASCII hex, ASCII binary).
//
// # Usage
//
//	c, err := capture.ReadFile("u202.cap",
//		capture.ReadWarnf(log.Printf))
//
// The store guarantees no reordering: the analysis core relies on the
// walking binary enumeration order of the records.
package capture
