package randsrc

import "github.com/clebeer/rappor/bitvec"

// Bits returns a width-bit vector where each bit is independently 1 with
// probability p, using one draw from src per bit. The output is fully
// determined by the source state: p=0 yields the zero vector and p=1 the
// all-ones vector without special-casing, since Float64 draws lie in [0, 1).
func Bits(src Source, p float64, width int) *bitvec.Vector {
	v := bitvec.New(width)
	for i := 0; i < width; i++ {
		if src.Float64() < p {
			v.Set(i)
		}
	}
	return v
}
