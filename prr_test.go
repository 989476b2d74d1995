package rappor

import (
	"testing"

	"github.com/clebeer/rappor/randsrc"
	"github.com/clebeer/rappor/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wideParams uses a 64-bit filter so that "vectors differ" assertions hold
// with overwhelming margin under any fixed seed.
func wideParams() Params {
	return Params{
		NumBloomBits: 64,
		NumHashes:    4,
		NumCohorts:   64,
		ProbP:        0.50,
		ProbQ:        0.75,
		ProbF:        0.50,
	}
}

func newTestEncoder(t *testing.T, params Params, src randsrc.Source) *Encoder {
	t.Helper()
	enc, err := NewEncoder(params, "u1", WithSource(src))
	require.NoError(t, err)
	return enc
}

// With one-PRR enabled, encoding the same value twice replays the identical
// permanent response while the instantaneous response stays fresh.
func TestEncode_OnePRRStablePRR(t *testing.T) {
	params := wideParams()
	params.OnePRRPerValue = true

	enc := newTestEncoder(t, params, testutil.Seeded(42))

	cohort1, bloom1, prr1, irr1 := enc.encode("v1")
	cohort2, bloom2, prr2, irr2 := enc.encode("v1")

	require.Equal(t, cohort1, cohort2)
	require.True(t, bloom1.Equal(bloom2))
	require.True(t, prr1.Equal(prr2))

	// Fresh p/q draws make the reports differ.
	assert.False(t, irr1.Equal(irr2))
}

// The permanent response in one-PRR mode is a function of (user, value)
// alone: encoders with unrelated seeds agree on it.
func TestEncode_OnePRRKeyedByUserAndValue(t *testing.T) {
	params := wideParams()
	params.OnePRRPerValue = true

	a := newTestEncoder(t, params, testutil.Seeded(1))
	b := newTestEncoder(t, params, testutil.Seeded(2))

	_, _, prrA, _ := a.encode("v1")
	_, _, prrB, _ := b.encode("v1")
	require.True(t, prrA.Equal(prrB))

	// A different value replays a different permanent response.
	_, _, prrC, _ := b.encode("v2")
	assert.False(t, prrA.Equal(prrC))

	// So does a different user.
	other, err := NewEncoder(params, "u2", WithSource(testutil.Seeded(1)))
	require.NoError(t, err)
	_, _, prrD, _ := other.encode("v1")
	assert.False(t, prrA.Equal(prrD))
}

// After a one-PRR encode, the source's main stream must continue exactly as
// if only the fresh p/q draws had been consumed.
func TestEncode_OnePRRRestoresMainStream(t *testing.T) {
	params := wideParams()
	params.OnePRRPerValue = true

	src := testutil.Seeded(42)
	enc := newTestEncoder(t, params, src)
	enc.Encode("v1")
	got := src.Float64()

	ref := testutil.Seeded(42)
	randsrc.Bits(ref, params.ProbP, params.NumBloomBits)
	randsrc.Bits(ref, params.ProbQ, params.NumBloomBits)
	want := ref.Float64()

	require.Equal(t, want, got)
}

// f = 0 replaces nothing: the permanent response is exactly the Bloom
// filter vector.
func TestEncode_FZeroCollapsesToBloom(t *testing.T) {
	params := wideParams()
	params.ProbF = 0

	enc := newTestEncoder(t, params, testutil.Seeded(3))
	for _, value := range []string{"v1", "v2", "example.com"} {
		_, bloomBits, prr, _ := enc.encode(value)
		require.True(t, prr.Equal(bloomBits), "value %q", value)
	}
}

// f = 1 replaces everything: the permanent response is exactly the uniform
// f-bits, so identically seeded encoders agree on it across different
// values even though the Bloom vectors differ.
func TestEncode_FOneIgnoresBloom(t *testing.T) {
	params := wideParams()
	params.ProbF = 1

	a := newTestEncoder(t, params, testutil.Seeded(9))
	b := newTestEncoder(t, params, testutil.Seeded(9))

	_, bloomA, prrA, _ := a.encode("v1")
	_, bloomB, prrB, _ := b.encode("v2")

	require.False(t, bloomA.Equal(bloomB))
	require.True(t, prrA.Equal(prrB))
}

// Without one-PRR mode the cohort is redrawn per call. This matches the
// upstream behavior; aggregation-side decoding may depend on it.
func TestEncode_CohortRedrawnPerCall(t *testing.T) {
	enc := newTestEncoder(t, DefaultParams(), testutil.Seeded(11))

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		cohort, _, _, _ := enc.encode("v1")
		seen[cohort] = true
	}
	assert.Greater(t, len(seen), 1)
}

// The mask draws happen in the fixed order {cohort, f-bits, mask-indices};
// a cycle source exposes any reordering.
func TestDrawOrder(t *testing.T) {
	params := DefaultParams()
	// The masks consume 1 + 16 + 16 draws; a period-3 cycle keeps the
	// f-bits and mask patterns distinct.
	src := &testutil.Cycle{Values: []float64{0.2, 0.7, 0.4}}

	enc := newTestEncoder(t, params, src)
	m := enc.drawMasks("v1")

	// First draw (0.2) scales into the cohort range.
	require.Equal(t, 12, m.cohort)
	// The next 16 draws cycle 0.7, 0.4, 0.2, ... against the 0.5
	// threshold, then the mask picks up the cycle where the f-bits left it.
	require.Equal(t, "0110110110110110", m.fBits.String())
	require.Equal(t, "1011011011011011", m.maskIndices.String())
}
