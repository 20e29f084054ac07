package pins

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{name: "gal exact", arg: "G22V10", want: "G22V10"},
		{name: "gal suffix", arg: "g22v10-15", want: "G22V10"},
		{name: "dip", arg: "DIP20", want: "DIP20"},
		{name: "dip lower", arg: "dip8", want: "DIP8"},
		{name: "unknown", arg: "PAL16L8", wantErr: true},
		{name: "odd dip", arg: "DIP5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.arg)
			if tt.wantErr {
				if !errors.Is(err, ErrBadDevice) {
					t.Fatalf("Lookup(%q) err = %v, want ErrBadDevice", tt.arg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.arg, err)
			}
			if d.Name() != tt.want {
				t.Errorf("Lookup(%q).Name() = %q, want %q", tt.arg, d.Name(), tt.want)
			}
		})
	}
}

func TestPinBitRoundTrip(t *testing.T) {
	for name := range dipDevices {
		d, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		for b := 0; b < Count; b++ {
			pin := d.PinOf(b)
			if pin == 0 {
				continue
			}
			got, ok := d.BitOf(pin)
			if !ok || got != b {
				t.Errorf("%s: BitOf(PinOf(%d)) = %d,%v", name, b, got, ok)
			}
		}
	}
}

func TestG22V10Pins(t *testing.T) {
	d, _ := Lookup("G22V10")
	// Bits 7, 14, 21 are the unbonded positions on the PLCC carrier.
	for _, b := range []int{7, 14, 21} {
		if got := d.PinOf(b); got != 0 {
			t.Errorf("PinOf(%d) = %d, want 0", b, got)
		}
	}
	if got := d.PinOf(27); got != 24 {
		t.Errorf("PinOf(27) = %d, want 24", got)
	}
}

func TestNilDeviceIdentity(t *testing.T) {
	var d *Device
	if got := d.PinOf(3); got != 4 {
		t.Errorf("nil PinOf(3) = %d, want 4", got)
	}
	b, ok := d.BitOf(4)
	if !ok || b != 3 {
		t.Errorf("nil BitOf(4) = %d,%v, want 3,true", b, ok)
	}
	if _, ok := d.BitOf(29); ok {
		t.Error("nil BitOf(29) should fail")
	}
}

func TestNamer(t *testing.T) {
	nm := NewNamer(nil)
	if got := nm.Name(2, false); got != "P3" {
		t.Errorf("default Name(2,false) = %q, want P3", got)
	}
	if got := nm.Name(2, true); got != "!P3" {
		t.Errorf("default Name(2,true) = %q, want !P3", got)
	}
	nm.SetName(2, "CS", true)
	if got := nm.Name(2, true); got != "CS" {
		t.Errorf("inverted Name(2,true) = %q, want CS", got)
	}
	if got := nm.Name(2, false); got != "!CS" {
		t.Errorf("inverted Name(2,false) = %q, want !CS", got)
	}
	if !nm.Inverted(2) {
		t.Error("Inverted(2) = false after SetName with invert")
	}
}
