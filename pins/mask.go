package pins

import (
	"math/bits"
	"strings"
)

// Count is the number of internal pin bits the analyzer models.
// Bits at and above Count are always zero in captures.
const Count = 28

// Mask is a set of pin bits. Bit b corresponds to internal pin
// index b in 0..Count-1.
type Mask uint32

// All has every modelled pin bit set.
const All Mask = 1<<Count - 1

// Bit returns the mask with only bit b set.
func Bit(b int) Mask {
	return 1 << uint(b)
}

// Has reports whether bit b is set.
func (m Mask) Has(b int) bool {
	return m&Bit(b) != 0
}

// OnesCount returns the number of set bits.
func (m Mask) OnesCount() int {
	return bits.OnesCount32(uint32(m))
}

// IsEmpty reports whether no bit is set.
func (m Mask) IsEmpty() bool {
	return m == 0
}

// Bits returns the set bit indices in ascending order.
func (m Mask) Bits() []int {
	res := make([]int, 0, m.OnesCount())
	for b := 0; b < Count; b++ {
		if m.Has(b) {
			res = append(res, b)
		}
	}
	return res
}

// String renders the mask as grouped binary, highest bit first, in the
// same 4:8:8:8 grouping the capture hardware reports.
func (m Mask) String() string {
	var sb strings.Builder
	for b := Count - 1; b >= 0; b-- {
		if m.Has(b) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if b == 24 || b == 16 || b == 8 {
			sb.WriteByte(':')
		}
	}
	return sb.String()
}
