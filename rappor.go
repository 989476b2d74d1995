package rappor

import (
	"time"

	"github.com/clebeer/rappor/bitvec"
	"github.com/clebeer/rappor/bloom"
	"github.com/clebeer/rappor/randsrc"
)

// Report is the externally visible encoding artifact: the client's cohort
// and the Instantaneous Randomized Response bit vector. It is created fresh
// per Encode call and owned by the caller. Neither the Bloom filter bits nor
// the PRR ever appear in a Report.
type Report struct {
	Cohort int
	Bits   *bitvec.Vector
}

// Encoder obfuscates values for a given user using the RAPPOR mechanism.
//
// An Encoder and its randomness source must not be used concurrently from
// multiple goroutines without external synchronization: the one-PRR-per-value
// mode performs a non-atomic snapshot/reseed/restore sequence on the source.
// Give each concurrent encoding task its own source-backed Encoder instead.
type Encoder struct {
	params   Params
	userID   string
	src      randsrc.Source
	stateful randsrc.StatefulSource // non-nil iff params.OnePRRPerValue
	logger   *Logger
	metrics  MetricsCollector
}

// NewEncoder creates an Encoder for one user. The parameter set is
// validated here; Encode has no failure path afterwards.
//
// With params.OnePRRPerValue set, the configured source must implement
// randsrc.StatefulSource so PRR draws can be replayed per (user, value);
// the default source does.
func NewEncoder(params Params, userID string, optFns ...Option) (*Encoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)
	src := opts.source
	if src == nil {
		src = randsrc.New()
	}

	e := &Encoder{
		params:  params,
		userID:  userID,
		src:     src,
		logger:  opts.logger.WithUser(userID),
		metrics: opts.metrics,
	}

	if params.OnePRRPerValue {
		ss, ok := src.(randsrc.StatefulSource)
		if !ok {
			return nil, configErrorf("one_prr_per_value",
				"randomness source %T does not support snapshot and reseed", src)
		}
		e.stateful = ss
	}

	e.logger.LogParams(params)
	return e, nil
}

// Params returns the encoder's parameter set.
func (e *Encoder) Params() Params { return e.params }

// Encode transforms value into a noisy report.
//
// Pipeline: draw {cohort, f-bits, mask} (deterministically replayed per
// (user, value) when one-PRR mode is on), hash value into the cohort's
// Bloom filter, apply the permanent response, then redraw every bit through
// the instantaneous response with fresh p/q randomness.
func (e *Encoder) Encode(value string) Report {
	start := time.Now()
	cohort, _, _, irr := e.encode(value)
	e.metrics.RecordEncode(time.Since(start))
	e.logger.LogEncode(cohort, e.params.NumBloomBits)
	return Report{Cohort: cohort, Bits: irr}
}

// encode runs the full pipeline and returns every intermediate stage.
// Tests observe the PRR through it; callers only ever see Encode's Report.
func (e *Encoder) encode(value string) (cohort int, bloomBits, prr, irr *bitvec.Vector) {
	k := e.params.NumBloomBits

	m := e.drawMasks(value)

	bloomBits = bloom.Bits(value, m.cohort, e.params.NumHashes, k)

	// Permanent response: keep the Bloom bit where the mask is 0, replace
	// it with the uniform bit where the mask is 1.
	prr = bitvec.Mux(m.maskIndices, bloomBits, m.fBits)

	// Fresh per report, never reseeded, even in one-PRR mode.
	pBits := randsrc.Bits(e.src, e.params.ProbP, k)
	qBits := randsrc.Bits(e.src, e.params.ProbQ, k)

	// Instantaneous response: p-bit where the PRR bit is 0, q-bit where
	// it is 1.
	irr = bitvec.Mux(prr, pBits, qBits)

	return m.cohort, bloomBits, prr, irr
}
