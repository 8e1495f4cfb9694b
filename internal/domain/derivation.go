package domain

// DerivationReport captures one run of the symbolic dRGT expansion.
// Exact rationals are carried as strings ("35/4"), ready for display
// and stable under JSON round-trips.
type DerivationReport struct {
	Order       int      `json:"order"`
	SqrtCoeffs  []string `json:"sqrt_coeffs"`  // Taylor coefficients of sqrt(1+x), constant term first
	E1Linear    string   `json:"e1_linear"`    // eps^1 slice of e_1
	E2Quadratic string   `json:"e2_quadratic"` // eps^2 slice of e_2, the Fierz-Pauli carrier

	// Per-polynomial shape of e_0..e_4: term counts after truncation,
	// term counts of the lowest-order (n-field interaction) slice, and
	// rendered lengths of that slice.
	ETermCounts     []int `json:"e_term_counts"`
	SliceTermCounts []int `json:"slice_term_counts"`
	SliceLengths    []int `json:"slice_lengths"`

	Latex DerivationLatex `json:"latex"`
	Check FierzPauliCheck `json:"check"`
}

// DerivationLatex holds paper-ready renderings of the low-order slices.
type DerivationLatex struct {
	E1Linear    string `json:"e1_linear"`
	E2Quadratic string `json:"e2_quadratic"`
}

// FierzPauliCheck records the diagonal-matrix test of the quadratic
// structure carried by e_2.
type FierzPauliCheck struct {
	Diagonal   []int64 `json:"diagonal"`
	TrH        string  `json:"tr_h"`
	TrH2       string  `json:"tr_h2"`
	FierzPauli string  `json:"fierz_pauli"` // (tr H)^2 - tr H^2
	E2Quad     string  `json:"e2_quad"`     // eps^2 slice of e_2 on the test matrix
	Expected   string  `json:"expected"`    // 1/8 of FierzPauli
	Match      bool    `json:"match"`
}
