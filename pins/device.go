package pins

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadDevice = errors.New("bad device")

// Device maps internal bit indices to physical package pins. A zero
// pin number means the bit is not bonded out on the package.
type Device struct {
	name     string
	bitToPin [Count]uint8
}

// The GAL22V10 table covers the 28-pin PLCC package; the gaps are the
// power, ground and NC positions the capture hardware cannot drive.
var devG22V10 = Device{name: "G22V10", bitToPin: [Count]uint8{
	0, 1, 2, 3, 4, 5, 6, 0,
	7, 8, 9, 10, 11, 12, 0, 13,
	14, 15, 16, 17, 18, 0, 19, 20,
	21, 22, 23, 24,
}}

var devDIP24 = Device{name: "DIP24", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 6, 7, 8,
	9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24,
	0, 0, 0, 0,
}}

var devDIP22 = Device{name: "DIP22", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 6, 7, 8,
	9, 10, 11, 0, 0, 12, 13, 14,
	15, 16, 17, 18, 19, 20, 21, 22,
	0, 0, 0, 0,
}}

var devDIP20 = Device{name: "DIP20", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 6, 7, 8,
	9, 10, 0, 0, 0, 0, 11, 12,
	13, 14, 15, 16, 17, 18, 19, 20,
	0, 0, 0, 0,
}}

var devDIP18 = Device{name: "DIP18", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 6, 7, 8,
	9, 0, 0, 0, 0, 0, 0, 10,
	11, 12, 13, 14, 15, 16, 17, 18,
	0, 0, 0, 0,
}}

var devDIP16 = Device{name: "DIP16", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 6, 7, 8,
	0, 0, 0, 0, 0, 0, 0, 0,
	9, 10, 11, 12, 13, 14, 15, 16,
	0, 0, 0, 0,
}}

var devDIP14 = Device{name: "DIP14", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 6, 7, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 8, 9, 10, 11, 12, 13, 14,
	0, 0, 0, 0,
}}

var devDIP12 = Device{name: "DIP12", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 6, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 7, 8, 9, 10, 11, 12,
	0, 0, 0, 0,
}}

var devDIP10 = Device{name: "DIP10", bitToPin: [Count]uint8{
	1, 2, 3, 4, 5, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 6, 7, 8, 9, 10,
	0, 0, 0, 0,
}}

var devDIP8 = Device{name: "DIP8", bitToPin: [Count]uint8{
	1, 2, 3, 4, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 5, 6, 7, 8,
	0, 0, 0, 0,
}}

var devDIP6 = Device{name: "DIP6", bitToPin: [Count]uint8{
	1, 2, 3, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 4, 5, 6,
	0, 0, 0, 0,
}}

var devDIP4 = Device{name: "DIP4", bitToPin: [Count]uint8{
	1, 2, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 3, 4,
	0, 0, 0, 0,
}}

var dipDevices = map[string]*Device{
	"DIP24": &devDIP24,
	"DIP22": &devDIP22,
	"DIP20": &devDIP20,
	"DIP18": &devDIP18,
	"DIP16": &devDIP16,
	"DIP14": &devDIP14,
	"DIP12": &devDIP12,
	"DIP10": &devDIP10,
	"DIP8":  &devDIP8,
	"DIP6":  &devDIP6,
	"DIP4":  &devDIP4,
}

// Lookup resolves a device name from a config file. Any name with the
// G22V10 prefix selects the GAL22V10 table; DIP4 through DIP24 select
// the straight-through DIP tables.
func Lookup(name string) (*Device, error) {
	up := strings.ToUpper(name)
	if strings.HasPrefix(up, "G22V10") {
		return &devG22V10, nil
	}
	if d, ok := dipDevices[up]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadDevice, name)
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// PinOf returns the 1-based physical pin number for bit b, or 0 when
// the bit is not bonded out. A nil device falls back to bit+1.
func (d *Device) PinOf(b int) int {
	if d == nil {
		return b + 1
	}
	if b < 0 || b >= Count {
		return 0
	}
	return int(d.bitToPin[b])
}

// BitOf returns the internal bit index for a physical pin number.
func (d *Device) BitOf(pin int) (int, bool) {
	if d == nil {
		if pin < 1 || pin > Count {
			return 0, false
		}
		return pin - 1, true
	}
	for b := 0; b < Count; b++ {
		if int(d.bitToPin[b]) == pin && pin != 0 {
			return b, true
		}
	}
	return 0, false
}
