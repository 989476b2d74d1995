// Package rappor implements client-side RAPPOR encoding: a randomized
// response mechanism that turns a sensitive value into a noisy, irreversible
// report safe to hand to an untrusted aggregator, while aggregate statistics
// over many reports remain recoverable.
//
// A report is produced in two stages. The value is hashed into a Bloom
// filter vector for the client's cohort; the Permanent Randomized Response
// (PRR) replaces each bit with a coin flip with probability f; the
// Instantaneous Randomized Response (IRR) then redraws every bit with
// probability p or q depending on the PRR bit. Only the cohort and the IRR
// ever leave the client.
//
// # Quick Start
//
//	enc, err := rappor.NewEncoder(rappor.DefaultParams(), "user-42")
//	if err != nil {
//		log.Fatal(err)
//	}
//	report := enc.Encode("example.com")
//	send(report.Cohort, report.Bits) // transport is the caller's concern
//
// Parameters can also be loaded from the upstream two-row CSV format:
//
//	params, err := rappor.ParamsFromCSV(f)
//
// # Determinism
//
// All randomness flows through a randsrc.Source supplied with WithSource.
// A fixed-seed source makes the full (cohort, report) sequence reproducible,
// which is how the golden-vector tests work. With Params.OnePRRPerValue set,
// the PRR for a given (user, value) pair is replayed deterministically
// across calls, while IRR bits stay fresh per report.
//
// # Concurrency
//
// An Encoder and its source must not be used from multiple goroutines
// without external synchronization; give each concurrent task its own
// source instead. See cmd/rappor-sim for the source-per-client pattern.
package rappor
