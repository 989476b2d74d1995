package testutil

import (
	"encoding/binary"

	"github.com/clebeer/rappor/randsrc"
)

// Seeded returns a PCG source with a fixed, test-friendly seed.
func Seeded(seed uint64) *randsrc.PCG {
	return randsrc.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Const is a stateless source whose every draw is determined by a single
// value: Float64 always returns V, IntN returns floor(V*n) clamped to
// [0, n). Snapshot, Restore, and Reseed are no-ops, so Const satisfies
// randsrc.StatefulSource and can drive one-PRR encoders in tests.
type Const struct {
	V float64
}

var _ randsrc.StatefulSource = Const{}

func (c Const) Float64() float64 { return c.V }

func (c Const) IntN(n int) int {
	i := int(c.V * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (c Const) Snapshot() randsrc.State { return nil }
func (c Const) Restore(randsrc.State)   {}
func (c Const) Reseed([]byte)           {}

// Cycle is a source that cycles through a fixed list of floats. IntN scales
// the next float into [0, n). Snapshot/Restore capture the cycle position;
// Reseed rewinds to the start.
type Cycle struct {
	Values []float64
	pos    int
}

var _ randsrc.StatefulSource = (*Cycle)(nil)

func (c *Cycle) Float64() float64 {
	v := c.Values[c.pos%len(c.Values)]
	c.pos++
	return v
}

func (c *Cycle) IntN(n int) int {
	i := int(c.Float64() * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (c *Cycle) Snapshot() randsrc.State {
	st := make(randsrc.State, 8)
	binary.LittleEndian.PutUint64(st, uint64(c.pos))
	return st
}

func (c *Cycle) Restore(st randsrc.State) {
	c.pos = int(binary.LittleEndian.Uint64(st))
}

func (c *Cycle) Reseed([]byte) { c.pos = 0 }
