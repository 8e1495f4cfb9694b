// Package symbolic implements exact multivariate polynomial algebra over the
// rationals, plus dense matrices of polynomials.
//
// Polynomials are stored canonically as a map from monomial to *big.Rat
// coefficient, so like terms always merge, zero terms are never kept, and
// term counts are well defined. All arithmetic is exact; nothing is ever
// rounded. Printing uses a graded lexicographic term order, so identical
// computations render identically across runs.
//
// The package covers what a truncated perturbation series needs: ring
// arithmetic, integer powers, truncation and coefficient extraction in a
// named variable, exact substitution and evaluation, traces of matrix
// powers. It is not a general computer-algebra system.
package symbolic
