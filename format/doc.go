// Package format enumerates the capture-file body encodings the
// reader understands.
//
// Capture files begin with a header line identifying the body length:
//
//	---- BYTES=0x<n> ----   raw binary body, n bytes
//	---- LINES=0x<n> ----   ASCII body, n data lines (hex or binary)
//
// The distinction between the two ASCII encodings is made from the
// first data line, so format.Unknown is a legitimate intermediate
// state for a reader that has seen a LINES header only.
package format
