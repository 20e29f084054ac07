package pins

import "strconv"

// Namer resolves internal bit indices to human-readable pin names.
// Unnamed bits fall back to P<pin> using the device's pin numbering.
// A bit configured inverted stores invert=1; names requested with a
// polarity differing from the stored inversion are wrapped in "!".
type Namer struct {
	dev    *Device
	names  [Count]string
	invert Mask
}

// NewNamer returns a Namer over dev. A nil dev uses the identity
// bit+1 pin numbering.
func NewNamer(dev *Device) *Namer {
	return &Namer{dev: dev}
}

// Device returns the device the namer resolves pins against (may be nil).
func (n *Namer) Device() *Device {
	return n.dev
}

// SetName assigns a symbolic name to bit b. invert marks the pin as
// logically inverted, as declared by a leading "!" in the config.
func (n *Namer) SetName(b int, name string, invert bool) {
	if b < 0 || b >= Count {
		return
	}
	n.names[b] = name
	if invert {
		n.invert |= Bit(b)
	} else {
		n.invert &^= Bit(b)
	}
}

// Inverted reports whether bit b was configured logically inverted.
func (n *Namer) Inverted(b int) bool {
	return n != nil && n.invert.Has(b)
}

// PinOf returns the physical pin number for bit b.
func (n *Namer) PinOf(b int) int {
	if n == nil {
		return b + 1
	}
	return n.dev.PinOf(b)
}

// Name returns the display name of bit b, with a "!" prefix when the
// requested polarity differs from the pin's configured inversion.
func (n *Namer) Name(b int, invert bool) string {
	inv := invert
	name := ""
	if n != nil {
		inv = invert != n.invert.Has(b)
		name = n.names[b]
	}
	if name == "" {
		pin := n.PinOf(b)
		if pin == 0 {
			pin = b + 1
		}
		name = "P" + strconv.Itoa(pin)
	}
	if inv {
		return "!" + name
	}
	return name
}
