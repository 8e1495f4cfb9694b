package symbolic

import (
	"fmt"
	"math/big"
	"sort"
)

// Poly is a multivariate polynomial with exact rational coefficients.
// The zero value is not usable; build values with Zero, One, Int, Rat,
// FromRat or Var. Operations never mutate their receivers.
type Poly struct {
	terms map[string]term
}

type term struct {
	coef *big.Rat
	mono monomial
}

var ratOne = big.NewRat(1, 1)

func newPoly() *Poly { return &Poly{terms: make(map[string]term)} }

// Zero returns the zero polynomial.
func Zero() *Poly { return newPoly() }

// One returns the constant polynomial 1.
func One() *Poly { return Int(1) }

// Int returns the constant polynomial n.
func Int(n int64) *Poly { return FromRat(big.NewRat(n, 1)) }

// Rat returns the constant polynomial num/den.
func Rat(num, den int64) *Poly { return FromRat(big.NewRat(num, den)) }

// FromRat returns the constant polynomial with value r.
func FromRat(r *big.Rat) *Poly {
	p := newPoly()
	p.accumulate(monomial{}, r)
	return p
}

// Var returns the polynomial consisting of the single variable name.
func Var(name string) *Poly {
	p := newPoly()
	p.accumulate(monomial{factors: []varPow{{name: name, exp: 1}}}, ratOne)
	return p
}

// accumulate adds c*m into p, deleting the term if it cancels. The
// coefficient is copied, never aliased.
func (p *Poly) accumulate(m monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	k := m.key()
	if t, ok := p.terms[k]; ok {
		sum := new(big.Rat).Add(t.coef, c)
		if sum.Sign() == 0 {
			delete(p.terms, k)
			return
		}
		p.terms[k] = term{coef: sum, mono: t.mono}
		return
	}
	p.terms[k] = term{coef: new(big.Rat).Set(c), mono: m}
}

func (p *Poly) clone() *Poly {
	r := newPoly()
	for k, t := range p.terms {
		r.terms[k] = term{coef: new(big.Rat).Set(t.coef), mono: t.mono}
	}
	return r
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	r := p.clone()
	for _, t := range q.terms {
		r.accumulate(t.mono, t.coef)
	}
	return r
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	r := p.clone()
	for _, t := range q.terms {
		r.accumulate(t.mono, new(big.Rat).Neg(t.coef))
	}
	return r
}

// Neg returns -p.
func (p *Poly) Neg() *Poly { return Zero().Sub(p) }

// Scale returns c * p.
func (p *Poly) Scale(c *big.Rat) *Poly {
	r := newPoly()
	for _, t := range p.terms {
		r.accumulate(t.mono, new(big.Rat).Mul(t.coef, c))
	}
	return r
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	r := newPoly()
	for _, a := range p.terms {
		for _, b := range q.terms {
			r.accumulate(a.mono.mul(b.mono), new(big.Rat).Mul(a.coef, b.coef))
		}
	}
	return r
}

// Pow returns p raised to a non-negative integer power. It panics on
// negative n.
func (p *Poly) Pow(n int) *Poly {
	if n < 0 {
		panic(fmt.Sprintf("symbolic: negative exponent %d", n))
	}
	r := One()
	for i := 0; i < n; i++ {
		r = r.Mul(p)
	}
	return r
}

// Truncate drops every term whose degree in name exceeds max.
func (p *Poly) Truncate(name string, max int) *Poly {
	r := newPoly()
	for _, t := range p.terms {
		if t.mono.degreeOf(name) > max {
			continue
		}
		r.accumulate(t.mono, t.coef)
	}
	return r
}

// Coeff returns the coefficient of name^k: every term of exact degree k in
// name, with that variable divided out.
func (p *Poly) Coeff(name string, k int) *Poly {
	r := newPoly()
	for _, t := range p.terms {
		if t.mono.degreeOf(name) != k {
			continue
		}
		r.accumulate(t.mono.without(name), t.coef)
	}
	return r
}

// Subst replaces name with the rational v, leaving other variables intact.
func (p *Poly) Subst(name string, v *big.Rat) *Poly {
	r := newPoly()
	for _, t := range p.terms {
		e := t.mono.degreeOf(name)
		if e == 0 {
			r.accumulate(t.mono, t.coef)
			continue
		}
		c := new(big.Rat).Mul(t.coef, ratPow(v, e))
		r.accumulate(t.mono.without(name), c)
	}
	return r
}

// Eval substitutes a rational for every variable and returns the exact
// value. It fails naming the first variable missing from vals.
func (p *Poly) Eval(vals map[string]*big.Rat) (*big.Rat, error) {
	sum := new(big.Rat)
	for _, t := range p.sortedTerms() {
		v := new(big.Rat).Set(t.coef)
		for _, f := range t.mono.factors {
			x, ok := vals[f.name]
			if !ok {
				return nil, fmt.Errorf("symbolic: no value for %q", f.name)
			}
			v.Mul(v, ratPow(x, f.exp))
		}
		sum.Add(sum, v)
	}
	return sum, nil
}

// Degree returns the highest power of name in p, 0 when name is absent or p
// is zero.
func (p *Poly) Degree(name string) int {
	d := 0
	for _, t := range p.terms {
		if e := t.mono.degreeOf(name); e > d {
			d = e
		}
	}
	return d
}

// TotalDegree returns the largest total degree among the terms of p, 0 for
// the zero polynomial.
func (p *Poly) TotalDegree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.mono.totalDegree(); td > d {
			d = td
		}
	}
	return d
}

// TermCount returns the number of terms; like terms are always merged.
func (p *Poly) TermCount() int { return len(p.terms) }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.terms) == 0 }

// Constant returns the coefficient of the constant term.
func (p *Poly) Constant() *big.Rat {
	if t, ok := p.terms[""]; ok {
		return new(big.Rat).Set(t.coef)
	}
	return new(big.Rat)
}

// Equal reports whether p and q have identical terms and coefficients.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || t.coef.Cmp(u.coef) != 0 {
			return false
		}
	}
	return true
}

// Vars returns the variables appearing in p, sorted.
func (p *Poly) Vars() []string {
	seen := make(map[string]bool)
	for _, t := range p.terms {
		for _, f := range t.mono.factors {
			seen[f.name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// sortedTerms returns the terms in graded lexicographic order.
func (p *Poly) sortedTerms() []term {
	ts := make([]term, 0, len(p.terms))
	for _, t := range p.terms {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].mono.less(ts[j].mono) })
	return ts
}

// ratPow raises r to a non-negative integer power.
func ratPow(r *big.Rat, n int) *big.Rat {
	out := new(big.Rat).Set(ratOne)
	for i := 0; i < n; i++ {
		out.Mul(out, r)
	}
	return out
}
