// Package testutil provides deterministic randomness sources for tests.
//
// This package is intended for use in tests and examples only. The stub
// sources make every draw predictable by hand, which is what the golden
// (cohort, report) vectors are computed against:
//
//	enc, _ := rappor.NewEncoder(params, "u1",
//	    rappor.WithSource(testutil.Const{V: 0.6}))
//
// Seeded returns a real PCG source with a fixed seed for tests that need
// realistic draws with reproducibility.
package testutil
