package randsrc

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"golang.org/x/crypto/hkdf"
)

// hkdfInfo domain-separates reseed key derivation from other HKDF uses.
var hkdfInfo = []byte("rappor/randsrc/reseed")

// State is an opaque snapshot of a source's internal state.
type State []byte

// Source produces independent uniform random draws.
type Source interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64

	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

// StatefulSource is a Source whose draw stream can be captured, restored,
// and deterministically reseeded from a key.
type StatefulSource interface {
	Source

	// Snapshot captures the current internal state.
	Snapshot() State

	// Restore resets the internal state to a previous Snapshot.
	Restore(State)

	// Reseed deterministically reinitializes the draw stream from key.
	// Two sources reseeded with the same key produce identical draws.
	Reseed(key []byte)
}

// PCG is a StatefulSource backed by math/rand/v2's PCG generator.
// It is not safe for concurrent use.
type PCG struct {
	src *rand.PCG
	rnd *rand.Rand
}

var _ StatefulSource = (*PCG)(nil)

// New creates a PCG source seeded from the operating system's entropy pool.
func New() *PCG {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("randsrc: reading system entropy: %v", err))
	}
	return NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
}

// NewPCG creates a PCG source with an explicit seed pair.
func NewPCG(seed1, seed2 uint64) *PCG {
	src := rand.NewPCG(seed1, seed2)
	return &PCG{src: src, rnd: rand.New(src)}
}

// NewFromKey creates a PCG source deterministically seeded from key.
func NewFromKey(key []byte) *PCG {
	s := NewPCG(0, 0)
	s.Reseed(key)
	return s
}

// Float64 returns a uniform float in [0, 1).
func (s *PCG) Float64() float64 { return s.rnd.Float64() }

// IntN returns a uniform integer in [0, n).
func (s *PCG) IntN(n int) int { return s.rnd.IntN(n) }

// Snapshot captures the generator state. The wrapping rand.Rand keeps no
// state of its own, so the PCG state is the whole story.
func (s *PCG) Snapshot() State {
	b, err := s.src.MarshalBinary()
	if err != nil {
		// PCG marshaling has no failure mode.
		panic(fmt.Sprintf("randsrc: snapshot: %v", err))
	}
	return State(b)
}

// Restore resets the generator to a state captured by Snapshot.
func (s *PCG) Restore(st State) {
	if err := s.src.UnmarshalBinary([]byte(st)); err != nil {
		panic(fmt.Sprintf("randsrc: restoring invalid state: %v", err))
	}
}

// Reseed derives a fresh seed pair from key via HKDF-SHA256 and resets the
// generator to it.
func (s *PCG) Reseed(key []byte) {
	var b [16]byte
	kdf := hkdf.New(sha256.New, key, nil, hkdfInfo)
	if _, err := kdf.Read(b[:]); err != nil {
		panic(fmt.Sprintf("randsrc: deriving seed: %v", err))
	}
	s.src.Seed(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
}

// Reseeded runs fn with src deterministically reseeded from key, then
// restores the state captured on entry. The restore happens on every exit
// path, so draws after Reseeded continue exactly where they left off.
func Reseeded(src StatefulSource, key []byte, fn func()) {
	st := src.Snapshot()
	defer src.Restore(st)
	src.Reseed(key)
	fn()
}
