package bitvec

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a bit vector with a fixed width.
//
// The zero value is not usable; construct vectors with New or FromUint64.
// Vector is not safe for concurrent mutation.
type Vector struct {
	width int
	bits  *bitset.BitSet
}

// New creates a zeroed Vector of the given width in bits.
// Width must be positive; callers validate widths at configuration time.
func New(width int) *Vector {
	if width <= 0 {
		panic("bitvec: width must be positive")
	}
	return &Vector{
		width: width,
		bits:  bitset.New(uint(width)),
	}
}

// FromUint64 creates a Vector of the given width from the low bits of x.
// Bits of x at positions >= width are ignored.
func FromUint64(width int, x uint64) *Vector {
	v := New(width)
	for i := 0; i < width && i < 64; i++ {
		if x&(1<<uint(i)) != 0 {
			v.bits.Set(uint(i))
		}
	}
	return v
}

// Width returns the fixed width of the vector in bits.
func (v *Vector) Width() int { return v.width }

// Set sets the bit at position i. It panics if i is out of range, since the
// backing set would otherwise silently grow past the fixed width.
func (v *Vector) Set(i int) {
	if i < 0 || i >= v.width {
		panic("bitvec: bit index out of range")
	}
	v.bits.Set(uint(i))
}

// Test reports whether the bit at position i is set.
func (v *Vector) Test(i int) bool {
	if i < 0 || i >= v.width {
		return false
	}
	return v.bits.Test(uint(i))
}

// OnesCount returns the number of set bits.
func (v *Vector) OnesCount() int { return int(v.bits.Count()) }

// Equal reports whether two vectors have the same width and the same bits.
func (v *Vector) Equal(o *Vector) bool {
	return v.width == o.width && v.bits.Equal(o.bits)
}

// Clone returns an independent copy of the vector.
func (v *Vector) Clone() *Vector {
	return &Vector{width: v.width, bits: v.bits.Clone()}
}

// Uint64 returns the vector as a fixed-width integer.
// It panics if the width exceeds 64 bits; configurations that need the
// word-sized view must validate the width up front.
func (v *Vector) Uint64() uint64 {
	if v.width > 64 {
		panic("bitvec: width exceeds 64 bits")
	}
	words := v.bits.Bytes()
	if len(words) == 0 {
		return 0
	}
	return words[0]
}

// String renders the vector as a bit string, most significant bit first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.width)
	for i := v.width - 1; i >= 0; i-- {
		if v.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Mux selects, per bit position, ifZero's bit where mask is 0 and ifOne's
// bit where mask is 1:
//
//	out = (ifZero &^ mask) | (ifOne & mask)
//
// All three vectors must share the same width.
func Mux(mask, ifZero, ifOne *Vector) *Vector {
	if mask.width != ifZero.width || mask.width != ifOne.width {
		panic("bitvec: width mismatch")
	}
	out := ifZero.bits.Difference(mask.bits)
	out.InPlaceUnion(ifOne.bits.Intersection(mask.bits))
	return &Vector{width: mask.width, bits: out}
}
