package capture

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cdhooper/brutus28/format"
)

const (
	// headerScanLines bounds how far into a file the start marker may
	// appear; capture logs often begin with terminal chatter.
	headerScanLines = 100

	// maxRecords guards the allocation made from an untrusted header.
	maxRecords = 1 << 28

	rawEndLo = 0x2d2d2d2d // "----"
	rawEndHi = 0x444e4520 // " END"
)

type readOpts struct {
	warnf func(msg string, args ...any)
}

type ReadOption func(*readOpts)

// ReadWarnf directs per-line warnings (malformed body lines, length
// mismatches) to fn. The default discards them.
func ReadWarnf(fn func(msg string, args ...any)) ReadOption {
	return func(o *readOpts) { o.warnf = fn }
}

// ReadFile reads a capture file from disk.
func ReadFile(path string, opts ...ReadOption) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return c, nil
}

// Read reads a capture from r. The beginning and end of the capture
// are located from the markers the walker firmware emits, so the
// input need not be trimmed by hand.
func Read(r io.Reader, opts ...ReadOption) (*Capture, error) {
	o := &readOpts{warnf: func(string, ...any) {}}
	for _, opt := range opts {
		opt(o)
	}

	br := bufio.NewReader(r)
	fmat, expected, err := scanHeader(br)
	if err != nil {
		return nil, err
	}
	if expected > maxRecords {
		return nil, fmt.Errorf("%w: %d records", ErrBadHeader, expected)
	}

	c := New(expected)
	switch fmat {
	case format.RawBinary:
		err = readRaw(br, c)
	default:
		err = readASCII(br, c, fmat, expected, o)
	}
	if err != nil {
		return nil, err
	}
	if c.Len() != expected {
		o.warnf("read %d records of data, but expected %d", c.Len(), expected)
	}
	return c, nil
}

// scanHeader locates the start marker and returns the body format and
// expected record count. A LINES marker leaves the hex/binary
// distinction to the first data line (format.Unknown).
func scanHeader(br *bufio.Reader) (format.Format, int, error) {
	for ln := 0; ln < headerScanLines; ln++ {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			break
		}
		if i := strings.Index(line, "---- BYTES="); i >= 0 {
			n, perr := parseHexField(line[i+len("---- BYTES="):])
			if perr != nil {
				return 0, 0, fmt.Errorf("%w: %v", ErrBadHeader, perr)
			}
			return format.RawBinary, n / 8, nil
		}
		if i := strings.Index(line, "---- LINES="); i >= 0 {
			n, perr := parseHexField(line[i+len("---- LINES="):])
			if perr != nil {
				return 0, 0, fmt.Errorf("%w: %v", ErrBadHeader, perr)
			}
			return format.Unknown, n, nil
		}
		if err != nil {
			break
		}
	}
	return 0, 0, ErrNoHeader
}

func parseHexField(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("no hex digits in %q", s)
	}
	n, err := strconv.ParseUint(s[:end], 16, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'a' && b <= 'f' ||
		b >= 'A' && b <= 'F'
}

// readRaw consumes little-endian u32 (in, out) pairs until the 8-byte
// "---- END" literal or EOF.
func readRaw(br *bufio.Reader, c *Capture) error {
	buf := make([]byte, 8)
	for {
		if _, err := io.ReadFull(br, buf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return err
		}
		in := binary.LittleEndian.Uint32(buf[0:4])
		out := binary.LittleEndian.Uint32(buf[4:8])
		if in == rawEndLo && out == rawEndHi {
			return nil
		}
		c.Push(in, out)
	}
}

// readASCII consumes body lines, deciding between hex and
// binary-coded-binary on the first data line by the presence of
// colon separators.
func readASCII(br *bufio.Reader, c *Capture, fmat format.Format, expected int, o *readOpts) error {
	lineNum := 0
	for c.Len() < expected {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			return nil
		}
		lineNum++
		if strings.Contains(line, "---- END ----") {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if fmat == format.Unknown {
			if strings.Count(line, ":") >= 2 {
				fmat = format.ASCIIBinary
			} else {
				fmat = format.ASCIIHex
			}
		}
		switch fmat {
		case format.ASCIIBinary:
			in, out, perr := parseBCBLine(line)
			if perr != nil {
				o.warnf("line %d invalid: %s", lineNum, strings.TrimRight(line, "\n"))
			} else {
				c.Push(in, out)
			}
		case format.ASCIIHex:
			var in, out uint32
			if _, perr := fmt.Sscanf(line, "%x %x", &in, &out); perr != nil {
				o.warnf("line %d invalid: %s", lineNum, strings.TrimRight(line, "\n"))
			} else {
				c.Push(in, out)
			}
		}
		if err != nil {
			return nil
		}
	}
	return nil
}

func parseBCBLine(line string) (in, out uint32, err error) {
	var a, b, c, d, e, f, g, h uint32
	if _, err = fmt.Sscanf(line, "%x:%x:%x:%x %x:%x:%x:%x",
		&a, &b, &c, &d, &e, &f, &g, &h); err != nil {
		return 0, 0, err
	}
	in = uint32(bcdBinary(a))<<24 | uint32(bcdBinary(b))<<16 |
		uint32(bcdBinary(c))<<8 | uint32(bcdBinary(d))
	out = uint32(bcdBinary(e))<<24 | uint32(bcdBinary(f))<<16 |
		uint32(bcdBinary(g))<<8 | uint32(bcdBinary(h))
	return in, out, nil
}

// bcdBinary folds a binary-coded-binary group to its byte value: one
// nibble per binary digit, so 0x11111111 becomes 0xff and 0x10100101
// becomes 0xa5.
func bcdBinary(v uint32) uint8 {
	return uint8((v&(1<<28))>>21 |
		(v&(1<<24))>>18 |
		(v&(1<<20))>>15 |
		(v&(1<<16))>>12 |
		(v&(1<<12))>>9 |
		(v&(1<<8))>>6 |
		(v&(1<<4))>>3 |
		v&1)
}
