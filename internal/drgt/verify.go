package drgt

import (
	"fmt"
	"math/big"
)

// Verification is the diagonal-test sanity check of the Fierz-Pauli
// structure carried by e_2.
type Verification struct {
	Diag       [Dim]int64 // test values placed on the diagonal of H
	TrH        *big.Rat   // tr H
	TrH2       *big.Rat   // tr H^2
	FierzPauli *big.Rat   // (tr H)^2 - tr H^2
	E2Quad     *big.Rat   // eps^2 slice of e_2 on the test matrix
	Match      bool       // E2Quad equals 1/8 * FierzPauli
}

// Verify substitutes the diagonal test matrix H = diag(vals) into the
// expansion and checks that the quadratic slice of e_2 carries the
// Fierz-Pauli combination (tr H)^2 - tr H^2 with weight 1/8.
func (x *Expansion) Verify(vals [Dim]int64) (*Verification, error) {
	sub := diagonalValues(vals)

	h := HMatrix()
	trH, err := h.Trace().Eval(sub)
	if err != nil {
		return nil, fmt.Errorf("drgt: tr H: %w", err)
	}
	trH2, err := h.Pow(2).Trace().Eval(sub)
	if err != nil {
		return nil, fmt.Errorf("drgt: tr H^2: %w", err)
	}

	fp := new(big.Rat).Mul(trH, trH)
	fp.Sub(fp, trH2)

	e2Quad, err := x.E[2].Coeff(OrderSymbol, 2).Eval(sub)
	if err != nil {
		return nil, fmt.Errorf("drgt: e_2 slice: %w", err)
	}
	want := new(big.Rat).Mul(fp, big.NewRat(1, 8))

	return &Verification{
		Diag:       vals,
		TrH:        trH,
		TrH2:       trH2,
		FierzPauli: fp,
		E2Quad:     e2Quad,
		Match:      e2Quad.Cmp(want) == 0,
	}, nil
}

// diagonalValues maps every perturbation symbol to its value on the test
// matrix diag(vals): diagonal symbols take vals, off-diagonal ones vanish.
func diagonalValues(vals [Dim]int64) map[string]*big.Rat {
	sub := make(map[string]*big.Rat)
	for i := 0; i < Dim; i++ {
		for j := i; j < Dim; j++ {
			if i == j {
				sub[componentName(i, j)] = big.NewRat(vals[i], 1)
			} else {
				sub[componentName(i, j)] = new(big.Rat)
			}
		}
	}
	return sub
}
