package rappor

import (
	"github.com/clebeer/rappor/bitvec"
	"github.com/clebeer/rappor/randsrc"
)

// masks holds the three independent draws behind the permanent response.
type masks struct {
	cohort      int
	fBits       *bitvec.Vector
	maskIndices *bitvec.Vector
}

// prrKey is the deterministic reseed key for a (user, value) pair.
func prrKey(userID, value string) []byte {
	return []byte(userID + value)
}

// drawMasks produces the per-call cohort assignment, the uniform replacement
// bits, and the Bernoulli(f) mask selecting which bits get replaced. The
// draw order {cohort, f-bits, mask} is fixed; deterministic-seed test
// vectors depend on it.
//
// In one-PRR mode the draws run under a scoped reseed keyed by
// (user, value), so the same pair always yields the same permanent
// response, and the source's main draw stream resumes untouched.
func (e *Encoder) drawMasks(value string) masks {
	draw := func() masks {
		return masks{
			cohort:      e.src.IntN(e.params.NumCohorts),
			fBits:       randsrc.Bits(e.src, 0.5, e.params.NumBloomBits),
			maskIndices: randsrc.Bits(e.src, e.params.ProbF, e.params.NumBloomBits),
		}
	}

	if !e.params.OnePRRPerValue {
		return draw()
	}

	var m masks
	randsrc.Reseeded(e.stateful, prrKey(e.userID, value), func() {
		m = draw()
	})
	e.metrics.RecordReseed()
	return m
}
