package bloom

import (
	"crypto/sha1"
	"encoding/binary"
	"strconv"

	"github.com/clebeer/rappor/bitvec"
)

// Bits returns the Bloom filter vector for value within cohort: a
// numBloomBits-wide vector with up to numHashes bits set. It is a pure
// function of its arguments; identical inputs always yield identical
// vectors.
//
// The two-byte digest extraction addresses at most 65536 positions, so
// numBloomBits beyond that is rejected at parameter validation.
func Bits(value string, cohort, numHashes, numBloomBits int) *bitvec.Vector {
	v := bitvec.New(numBloomBits)
	prefix := strconv.Itoa(cohort)
	for j := 0; j < numHashes; j++ {
		digest := sha1.Sum([]byte(prefix + strconv.Itoa(j) + value))
		pos := int(binary.LittleEndian.Uint16(digest[:2])) % numBloomBits
		v.Set(pos)
	}
	return v
}
