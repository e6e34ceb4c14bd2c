// Package ignore aggregates global and per-checkout ignore rules into a
// single generated ignore file.
//
// Lines are emitted in a fixed order because later negations override
// earlier excludes:
//
//	*.log              global lines, verbatim
//	/proj/build        per-directory excludes
//	/proj/*            blanket exclude for a directory with includes
//	!/proj/build/keep  its re-included paths
package ignore
