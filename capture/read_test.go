package capture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rawCapture(recs []Record, withEnd bool) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "some boot chatter\n---- BYTES=0x%x ----\n", len(recs)*8)
	for _, r := range recs {
		var b [8]byte
		binary.LittleEndian.PutUint32(b[0:4], r.In)
		binary.LittleEndian.PutUint32(b[4:8], r.Out)
		buf.Write(b[:])
	}
	if withEnd {
		buf.WriteString("---- END")
	}
	return buf.Bytes()
}

func TestReadRaw(t *testing.T) {
	want := []Record{
		{In: 0x0, Out: 0x0},
		{In: 0x1, Out: 0x1},
		{In: 0x2, Out: 0x2},
		{In: 0x3, Out: 0x7},
	}
	for _, withEnd := range []bool{true, false} {
		c, err := Read(bytes.NewReader(rawCapture(want, withEnd)))
		if err != nil {
			t.Fatalf("Read (end=%v): %v", withEnd, err)
		}
		var got []Record
		for k := 0; k < c.Len(); k++ {
			got = append(got, c.Record(k))
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("records mismatch (end=%v) (-want +got):\n%s", withEnd, diff)
		}
	}
}

func TestReadASCIIHex(t *testing.T) {
	in := `junk line
---- LINES=0x4 ----
00000000 00000000
00000001 00000001
00000002 00000002
00000003 00000007
---- END ----
trailing junk
`
	c, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}
	rin, rout := c.Get(3)
	if rin != 3 || rout != 7 {
		t.Errorf("Get(3) = %x,%x, want 3,7", rin, rout)
	}
}

func TestReadASCIIBCB(t *testing.T) {
	in := `---- LINES=0x2 ----
0000:00000000:00000000:00000011 0000:00000000:00000000:00000001
0000:00000000:00000001:00000001 0000:00000000:00000001:00000101
---- END ----
`
	c, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	rin, rout := c.Get(0)
	if rin != 0x3 || rout != 0x1 {
		t.Errorf("Get(0) = %#x,%#x, want 0x3,0x1", rin, rout)
	}
	rin, rout = c.Get(1)
	if rin != 0x101 || rout != 0x105 {
		t.Errorf("Get(1) = %#x,%#x, want 0x101,0x105", rin, rout)
	}
}

func TestReadNoHeader(t *testing.T) {
	_, err := Read(strings.NewReader("no markers here\nat all\n"))
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("err = %v, want ErrNoHeader", err)
	}
}

func TestReadWarnsOnBadLinesAndShortCount(t *testing.T) {
	in := `---- LINES=0x3 ----
00000000 00000000
this line is garbage
---- END ----
`
	var warnings []string
	c, err := Read(strings.NewReader(in), ReadWarnf(func(msg string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(msg, args...))
	}))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %q, want bad-line and short-count", warnings)
	}
	if !strings.Contains(warnings[0], "line 2 invalid") {
		t.Errorf("first warning %q does not name line 2", warnings[0])
	}
}

func TestReadBadHeaderCount(t *testing.T) {
	_, err := Read(strings.NewReader("---- LINES=0xzz ----\n"))
	if !errors.Is(err, ErrBadHeader) {
		t.Fatalf("err = %v, want ErrBadHeader", err)
	}
}
