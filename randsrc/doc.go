// Package randsrc provides the randomness sources the encoder draws from.
//
// Source is the minimal contract: independent uniform floats and integers.
// StatefulSource adds the snapshot/restore/reseed capabilities needed for the
// "one permanent response per value" replay mode, where the mask draws for a
// (user, value) pair must be reproducible while the rest of the draw stream
// stays untouched.
//
// The default implementation (PCG) wraps math/rand/v2's PCG generator.
// Deterministic reseeding derives the generator state from a caller key via
// HKDF-SHA256, so any two sources reseeded with the same key produce the
// same draw sequence.
//
// Sources are not safe for concurrent use. Give each concurrent encoding
// task its own source, or serialize access externally.
package randsrc
