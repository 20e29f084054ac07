package pins

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMaskBits(t *testing.T) {
	tests := []struct {
		name string
		m    Mask
		want []int
	}{
		{name: "empty", m: 0, want: []int{}},
		{name: "low", m: Bit(0), want: []int{0}},
		{name: "spread", m: Bit(0) | Bit(5) | Bit(27), want: []int{0, 5, 27}},
		{name: "all", m: All, want: func() []int {
			out := make([]int, Count)
			for i := range out {
				out[i] = i
			}
			return out
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.m.Bits()); diff != "" {
				t.Errorf("Bits() mismatch (-want +got):\n%s", diff)
			}
			if got := tt.m.OnesCount(); got != len(tt.want) {
				t.Errorf("OnesCount() = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestMaskString(t *testing.T) {
	tests := []struct {
		m    Mask
		want string
	}{
		{m: 0, want: "0000:00000000:00000000:00000000"},
		{m: Bit(0), want: "0000:00000000:00000000:00000001"},
		{m: Bit(27), want: "1000:00000000:00000000:00000000"},
		{m: Bit(8) | Bit(16), want: "0000:00000001:00000001:00000000"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mask(%#x).String() = %q, want %q", uint32(tt.m), got, tt.want)
		}
	}
}

func TestMaskHas(t *testing.T) {
	m := Bit(3) | Bit(12)
	if !m.Has(3) || !m.Has(12) {
		t.Error("Has misses set bits")
	}
	if m.Has(4) {
		t.Error("Has reports an unset bit")
	}
}
