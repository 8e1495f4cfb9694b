// Package dispersion models gravitational-wave propagation with a massive
// graviton.
//
// The dispersion relation E^2 = p^2 c^2 + m^2 c^4 makes the group velocity
// frequency dependent,
//
//	v_g(f) = c sqrt(1 - (m c^2 / h f)^2)
//
// so low-frequency components of a signal arrive late. Over a distance D
// the delay relative to light is, in the small-mass limit,
//
//	dt(f) = D/(2c) (m c^2 / h f)^2
//
// The package evaluates these closed forms over frequency and mass grids,
// builds the two-component chirp comparison used in the diagnostic figure,
// and fits the delay-versus-mass power law as a consistency check.
package dispersion
