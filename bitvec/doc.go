// Package bitvec provides fixed-width bit vectors for randomized-response
// encoding.
//
// A Vector has its width fixed at construction and never grows. The central
// operation is Mux, the bitwise select
//
//	out = (ifZero &^ mask) | (ifOne & mask)
//
// which both randomized-response stages are built on: the permanent stage
// selects between Bloom filter bits and uniform replacement bits, the
// instantaneous stage selects between p-bits and q-bits.
//
// Vectors are backed by github.com/bits-and-blooms/bitset, so widths are not
// limited to a machine word. Uint64 offers a word-sized view for widths up
// to 64 bits.
package bitvec
