package capture

import "errors"

var (
	// ErrNoHeader means no BYTES= or LINES= marker was found within
	// the header scan window.
	ErrNoHeader = errors.New("no capture start marker")
	// ErrBadHeader means a marker was found but its length field did
	// not parse.
	ErrBadHeader = errors.New("bad capture header")
)
