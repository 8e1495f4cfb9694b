// Package drgt derives the interaction polynomials of dRGT (de Rham,
// Gabadadze, Tolley) massive gravity as truncated perturbation series.
//
// # Derivation
//
// Starting from the symmetric 4x4 perturbation h scaled by the bookkeeping
// symbol eps, the package expands the matrix square root
//
//	sqrt(I + eps*h) = I + 1/2 h - 1/8 h^2 + 1/16 h^3 - 5/128 h^4 + ...
//
// with generalized binomial coefficients, forms the tensor
// K = I - sqrt(I + eps*h), truncates it at the working order, and assembles
// the elementary symmetric polynomials e_0..e_4 of K from traces of its
// powers via Newton's identities.
//
// Two working orders are supported. Order 2 keeps the quadratic physics,
// where the eps^2 slice of e_2 carries the Fierz-Pauli mass combination
// (tr h)^2 - tr h^2. Order 4 keeps everything through the quartic
// self-interactions that drive Vainshtein screening.
//
// All arithmetic is exact over the rationals; nothing is evaluated in
// floating point.
package drgt
