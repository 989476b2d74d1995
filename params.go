package rappor

import (
	"encoding/csv"
	"io"
	"strconv"
)

// maxBloomBits bounds the filter width. The Bloom hash extracts two digest
// bytes, so positions beyond 2^16 would alias silently.
const maxBloomBits = 1 << 16

// Params is the immutable set of privacy-affecting encoding parameters.
// It is passed by value and never mutated after validation; a single Params
// is shared by every encoding of a deployment.
type Params struct {
	NumBloomBits int // k: width of the Bloom filter in bits
	NumHashes    int // h: number of Bloom filter hash functions
	NumCohorts   int // m: number of cohorts
	ProbP        float64
	ProbQ        float64
	ProbF        float64

	// OnePRRPerValue pins the permanent response: the same (user, value)
	// pair always yields the same PRR mask across calls.
	OnePRRPerValue bool
}

// DefaultParams returns the upstream default parameter set.
func DefaultParams() Params {
	return Params{
		NumBloomBits: 16,
		NumHashes:    2,
		NumCohorts:   64,
		ProbP:        0.50,
		ProbQ:        0.75,
		ProbF:        0.50,
	}
}

// Validate checks ranges eagerly so that Encode never has to.
func (p Params) Validate() error {
	if p.NumBloomBits < 1 {
		return configErrorf("k", "num_bloombits must be positive, got %d", p.NumBloomBits)
	}
	if p.NumBloomBits > maxBloomBits {
		return configErrorf("k", "num_bloombits must be at most %d, got %d", maxBloomBits, p.NumBloomBits)
	}
	if p.NumHashes < 1 {
		return configErrorf("h", "num_hashes must be positive, got %d", p.NumHashes)
	}
	if p.NumHashes > p.NumBloomBits {
		return configErrorf("h", "num_hashes %d exceeds num_bloombits %d", p.NumHashes, p.NumBloomBits)
	}
	if p.NumCohorts < 1 {
		return configErrorf("m", "num_cohorts must be positive, got %d", p.NumCohorts)
	}
	for _, pr := range []struct {
		field string
		v     float64
	}{
		{"p", p.ProbP},
		{"q", p.ProbQ},
		{"f", p.ProbF},
	} {
		if pr.v < 0 || pr.v > 1 {
			return configErrorf(pr.field, "probability must be in [0,1], got %v", pr.v)
		}
	}
	return nil
}

// csvHeader is the mandatory first row of a parameter file.
var csvHeader = [...]string{"k", "h", "m", "p", "q", "f"}

// ParamsFromCSV reads a parameter set from the upstream two-row CSV format:
// a header row equal to "k,h,m,p,q,f" and one data row with three integers
// and three floats in that order. Any structural or numeric deviation, and
// any out-of-range value, is reported as a *ConfigError.
func ParamsFromCSV(r io.Reader) (Params, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Params{}, configErrorWrap("", err, "reading params: %v", err)
	}
	if len(rows) < 1 {
		return Params{}, configErrorf("", "params file is empty; expected header k,h,m,p,q,f")
	}
	if len(rows[0]) != len(csvHeader) {
		return Params{}, configErrorf("", "header has %d columns; expected k,h,m,p,q,f", len(rows[0]))
	}
	for i, col := range csvHeader {
		if rows[0][i] != col {
			return Params{}, configErrorf(col, "header column %d is %q; expected %q", i, rows[0][i], col)
		}
	}
	if len(rows) < 2 {
		return Params{}, configErrorf("", "expected second row with params")
	}
	if len(rows) > 2 {
		return Params{}, configErrorf("", "params file should only have two rows, got %d", len(rows))
	}
	row := rows[1]

	var p Params
	ints := []struct {
		field string
		dst   *int
	}{
		{"k", &p.NumBloomBits},
		{"h", &p.NumHashes},
		{"m", &p.NumCohorts},
	}
	for i, f := range ints {
		n, err := strconv.Atoi(row[i])
		if err != nil {
			return Params{}, configErrorWrap(f.field, err, "not an integer: %q", row[i])
		}
		*f.dst = n
	}
	floats := []struct {
		field string
		dst   *float64
	}{
		{"p", &p.ProbP},
		{"q", &p.ProbQ},
		{"f", &p.ProbF},
	}
	for i, f := range floats {
		v, err := strconv.ParseFloat(row[i+len(ints)], 64)
		if err != nil {
			return Params{}, configErrorWrap(f.field, err, "not a number: %q", row[i+len(ints)])
		}
		*f.dst = v
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
