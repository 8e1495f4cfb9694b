package symbolic

import (
	"fmt"
	"math/big"
	"strings"
)

// String renders p with terms in graded lexicographic order, for example
// "1 - 1/2*eps*h00 + eps^2*h01^2". The order is deterministic, so equal
// polynomials always print identically.
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.sortedTerms() {
		writeSign(&b, i == 0, t.coef.Sign() < 0)
		abs := new(big.Rat).Abs(t.coef)
		mono := t.mono.key()
		switch {
		case mono == "":
			b.WriteString(abs.RatString())
		case abs.Cmp(ratOne) == 0:
			b.WriteString(mono)
		default:
			b.WriteString(abs.RatString())
			b.WriteByte('*')
			b.WriteString(mono)
		}
	}
	return b.String()
}

// LaTeX renders p for inclusion in a paper. Variable names with a trailing
// digit run become subscripted, so "h01" prints as "h_{01}"; rational
// coefficients use \frac.
func (p *Poly) LaTeX() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.sortedTerms() {
		writeSign(&b, i == 0, t.coef.Sign() < 0)
		abs := new(big.Rat).Abs(t.coef)
		mono := latexMonomial(t.mono)
		switch {
		case mono == "":
			b.WriteString(latexRat(abs))
		case abs.Cmp(ratOne) == 0:
			b.WriteString(mono)
		default:
			b.WriteString(latexRat(abs))
			b.WriteString(" ")
			b.WriteString(mono)
		}
	}
	return b.String()
}

func writeSign(b *strings.Builder, first, negative bool) {
	switch {
	case first && negative:
		b.WriteByte('-')
	case !first && negative:
		b.WriteString(" - ")
	case !first:
		b.WriteString(" + ")
	}
}

func latexRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return `\frac{` + r.Num().String() + `}{` + r.Denom().String() + `}`
}

func latexMonomial(m monomial) string {
	parts := make([]string, 0, len(m.factors))
	for _, f := range m.factors {
		v := latexVar(f.name)
		if f.exp != 1 {
			v += fmt.Sprintf("^{%d}", f.exp)
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}

// latexVar subscripts a trailing digit run: "h01" becomes "h_{01}". Names
// that are all digits or have no digit suffix pass through unchanged.
func latexVar(name string) string {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return name
	}
	return name[:i] + "_{" + name[i:] + "}"
}
