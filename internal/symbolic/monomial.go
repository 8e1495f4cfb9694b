package symbolic

import (
	"strconv"
	"strings"
)

// varPow is a single variable raised to a positive integer power.
type varPow struct {
	name string
	exp  int
}

// monomial is a product of variable powers, kept sorted by variable name.
// The empty monomial is the constant 1. Monomials are immutable once built;
// operations return fresh values.
type monomial struct {
	factors []varPow
}

// key returns the canonical map key, for example "eps^2*h01". Constants map
// to the empty string.
func (m monomial) key() string {
	if len(m.factors) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range m.factors {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(f.name)
		if f.exp != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(f.exp))
		}
	}
	return b.String()
}

func (m monomial) totalDegree() int {
	d := 0
	for _, f := range m.factors {
		d += f.exp
	}
	return d
}

func (m monomial) degreeOf(name string) int {
	for _, f := range m.factors {
		if f.name == name {
			return f.exp
		}
	}
	return 0
}

// mul merges two sorted factor lists, adding exponents of shared variables.
func (m monomial) mul(o monomial) monomial {
	if len(m.factors) == 0 {
		return o
	}
	if len(o.factors) == 0 {
		return m
	}
	out := make([]varPow, 0, len(m.factors)+len(o.factors))
	i, j := 0, 0
	for i < len(m.factors) && j < len(o.factors) {
		a, b := m.factors[i], o.factors[j]
		switch {
		case a.name == b.name:
			out = append(out, varPow{name: a.name, exp: a.exp + b.exp})
			i++
			j++
		case a.name < b.name:
			out = append(out, a)
			i++
		default:
			out = append(out, b)
			j++
		}
	}
	out = append(out, m.factors[i:]...)
	out = append(out, o.factors[j:]...)
	return monomial{factors: out}
}

// without removes name from the monomial entirely.
func (m monomial) without(name string) monomial {
	if m.degreeOf(name) == 0 {
		return m
	}
	out := make([]varPow, 0, len(m.factors)-1)
	for _, f := range m.factors {
		if f.name != name {
			out = append(out, f)
		}
	}
	return monomial{factors: out}
}

// less orders monomials by total degree, then lexicographically by key.
func (m monomial) less(o monomial) bool {
	if dm, do := m.totalDegree(), o.totalDegree(); dm != do {
		return dm < do
	}
	return m.key() < o.key()
}
