// Package tlsh implements the Trend Micro Locality Sensitive Hash: a
// fuzzy digest that summarizes a byte stream so that similar inputs land
// on digests with a small comparison distance.
//
// The package is synchronous and allocation-light. A Generator is a
// single-owner state machine fed via Update and consumed exactly once by
// Finalize; a FuzzyHash is immutable and safe to share across goroutines
// once produced. Compare is stateless and reentrant.
package tlsh
