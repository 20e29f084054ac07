package format

import (
	"errors"
	"fmt"
)

// Format identifies the body encoding of a capture file.
type Format int

const (
	Unknown Format = iota
	// RawBinary bodies are little-endian u32 (in, out) pairs.
	RawBinary
	// ASCIIHex bodies have two 8-hex-digit words per line.
	ASCIIHex
	// ASCIIBinary bodies have two colon-separated binary-coded-binary
	// groups per line (0x11111111 denoting 0xff).
	ASCIIBinary
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"raw":    RawBinary,
		"bin":    RawBinary,
		"hex":    ASCIIHex,
		"ascii":  ASCIIHex,
		"binary": ASCIIBinary,
		"bcb":    ASCIIBinary,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Unknown:
		return []byte("unknown"), nil
	case RawBinary:
		return []byte("raw"), nil
	case ASCIIHex:
		return []byte("hex"), nil
	case ASCIIBinary:
		return []byte("binary"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsRaw() bool   { return f == RawBinary }
func (f Format) IsASCII() bool { return f == ASCIIHex || f == ASCIIBinary }
