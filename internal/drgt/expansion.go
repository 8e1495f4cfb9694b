package drgt

import (
	"fmt"
	"math/big"

	"gravlab/internal/symbolic"
)

// OrderSymbol is the bookkeeping variable counting powers of the
// perturbation.
const OrderSymbol = "eps"

// Dim is the spacetime dimension; the perturbation is a Dim x Dim matrix.
const Dim = 4

// HMatrix returns the symmetric matrix of perturbation symbols h00..h33,
// with hij = hji by construction.
func HMatrix() *symbolic.Matrix {
	m := symbolic.NewMatrix(Dim, Dim)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			m.Set(i, j, symbolic.Var(componentName(i, j)))
		}
	}
	return m
}

// Perturbation returns h = eps*H, the perturbation with its bookkeeping
// factor attached.
func Perturbation() *symbolic.Matrix {
	eps := symbolic.Var(OrderSymbol)
	m := symbolic.NewMatrix(Dim, Dim)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			m.Set(i, j, eps.Mul(symbolic.Var(componentName(i, j))))
		}
	}
	return m
}

// componentName returns the symbol name for entry (i,j); the lower index
// comes first, which is what makes the matrix symmetric.
func componentName(i, j int) string {
	if i > j {
		i, j = j, i
	}
	return fmt.Sprintf("h%d%d", i, j)
}

// Expansion holds the truncated dRGT building blocks: the tensor
// K = I - sqrt(I + eps*h), the traces of its powers, and the elementary
// symmetric polynomials assembled from them.
type Expansion struct {
	Order int               // working order in eps (2 or 4)
	K     *symbolic.Matrix  // truncated at Order
	TrK   [5]*symbolic.Poly // TrK[n] = tr(K^n) for n = 1..4; index 0 unused
	E     [5]*symbolic.Poly // E[n] = e_n(K), truncated per schedule
}

// Expand derives the interaction polynomials at the requested working
// order.
//
// Order 2 is the quadratic derivation: the square-root series is kept
// through h^3, K is truncated at eps^2, powers of K are traced without
// further truncation, and e_1..e_4 are truncated at orders 2, 2, 3 and 4.
// Order 4 is the quartic derivation: series through h^4, K and each matrix
// power truncated at eps^4, and every e_n truncated at eps^4.
func Expand(order int) (*Expansion, error) {
	var eCut [5]int
	var truncatePowers bool
	switch order {
	case 2:
		eCut = [5]int{0, 2, 2, 3, 4}
	case 4:
		eCut = [5]int{0, 4, 4, 4, 4}
		truncatePowers = true
	default:
		return nil, fmt.Errorf("drgt: unsupported working order %d (want 2 or 4)", order)
	}

	h := Perturbation()
	identity := symbolic.Identity(Dim)

	// Taylor series of the square root. Terms past the working order exist
	// only transiently; the truncation of K removes them.
	depth := seriesDepth(order)
	coeffs := SqrtSeriesCoeffs(depth)
	sqrt := identity
	hp := identity
	for k := 1; k <= depth; k++ {
		hp = hp.Mul(h)
		sqrt = sqrt.Add(hp.Scale(coeffs[k]))
	}

	k1 := identity.Sub(sqrt).Truncate(OrderSymbol, order)

	k2 := k1.Mul(k1)
	if truncatePowers {
		k2 = k2.Truncate(OrderSymbol, order)
	}
	k3 := k2.Mul(k1)
	if truncatePowers {
		k3 = k3.Truncate(OrderSymbol, order)
	}
	k4 := k2.Mul(k2)
	if truncatePowers {
		k4 = k4.Truncate(OrderSymbol, order)
	}

	x := &Expansion{Order: order, K: k1}
	x.TrK[1] = k1.Trace()
	x.TrK[2] = k2.Trace()
	x.TrK[3] = k3.Trace()
	x.TrK[4] = k4.Trace()

	// Newton's identities: n*e_n = sum_{k=1..n} (-1)^(k-1) e_{n-k} tr(K^k).
	// Intermediates are truncated at the deepest cutoff; the per-n schedule
	// is applied at the end so lower e_n never feed truncated input into
	// higher ones.
	top := eCut[4]
	e := [5]*symbolic.Poly{symbolic.One()}
	for n := 1; n <= 4; n++ {
		sum := symbolic.Zero()
		sign := big.NewRat(1, 1)
		for k := 1; k <= n; k++ {
			sum = sum.Add(e[n-k].Mul(x.TrK[k]).Scale(sign)).Truncate(OrderSymbol, top)
			sign = new(big.Rat).Neg(sign)
		}
		e[n] = sum.Scale(big.NewRat(1, int64(n)))
	}

	x.E[0] = e[0]
	for n := 1; n <= 4; n++ {
		x.E[n] = e[n].Truncate(OrderSymbol, eCut[n])
	}
	return x, nil
}

// SeriesCoeffs returns the square-root series coefficients used at this
// working order, constant term first.
func (x *Expansion) SeriesCoeffs() []*big.Rat {
	return SqrtSeriesCoeffs(seriesDepth(x.Order))
}

// seriesDepth is the highest power of h kept in the square-root series:
// h^3 for the quadratic derivation, h^order beyond that.
func seriesDepth(order int) int {
	if order < 3 {
		return 3
	}
	return order
}
