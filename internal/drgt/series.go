package drgt

import "math/big"

// SqrtSeriesCoeffs returns the generalized binomial coefficients C(1/2, k)
// of the series (1+x)^(1/2) = sum C(1/2,k) x^k for k = 0..n. The first five
// are 1, 1/2, -1/8, 1/16, -5/128.
func SqrtSeriesCoeffs(n int) []*big.Rat {
	coeffs := make([]*big.Rat, n+1)
	coeffs[0] = big.NewRat(1, 1)
	for k := 1; k <= n; k++ {
		// C(1/2,k) = C(1/2,k-1) * (1/2 - (k-1)) / k = C(1/2,k-1) * (3-2k)/(2k)
		step := big.NewRat(int64(3-2*k), int64(2*k))
		coeffs[k] = new(big.Rat).Mul(coeffs[k-1], step)
	}
	return coeffs
}
