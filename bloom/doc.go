// Package bloom maps reported values to Bloom filter bit vectors.
//
// Each of the h hash functions is a SHA-1 digest over the cohort, the hash
// index, and the value's text; the first two digest bytes, read as a
// little-endian 16-bit integer and reduced modulo the filter width, give the
// bit to set. SHA-1 is used for its uniform bit distribution, not for
// secrecy; no key is involved.
//
// Hash collisions are tolerated rather than avoided: a vector may carry
// fewer than h set bits. That false-positive tolerance is what makes the
// structure a Bloom filter.
package bloom
