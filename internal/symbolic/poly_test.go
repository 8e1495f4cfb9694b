package symbolic_test

import (
	"math/big"
	"strings"
	"testing"

	"gravlab/internal/symbolic"
)

func TestAddCollectsLikeTerms(t *testing.T) {
	x := symbolic.Var("x")
	sum := x.Add(x)
	if got, want := sum.String(), "2*x"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := sum.TermCount(); got != 1 {
		t.Fatalf("got %d terms, want 1", got)
	}
}

func TestSubCancelsExactly(t *testing.T) {
	x := symbolic.Var("x")
	p := x.Mul(x).Add(symbolic.Int(3))
	diff := p.Sub(p)
	if !diff.IsZero() {
		t.Fatalf("p - p = %s, want 0", diff)
	}
	if got := diff.TermCount(); got != 0 {
		t.Fatalf("got %d terms, want 0", got)
	}
}

func TestMulMergesPowers(t *testing.T) {
	x := symbolic.Var("x")
	sq := x.Mul(x)
	if got, want := sq.String(), "x^2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := sq.TermCount(); got != 1 {
		t.Fatalf("got %d terms, want 1", got)
	}
}

func TestPowExpandsBinomial(t *testing.T) {
	x, y := symbolic.Var("x"), symbolic.Var("y")
	p := x.Add(y).Pow(2)
	want := x.Pow(2).Add(y.Pow(2)).Add(x.Mul(y).Scale(big.NewRat(2, 1)))
	if !p.Equal(want) {
		t.Fatalf("(x+y)^2 = %s, want %s", p, want)
	}
	if got := p.TermCount(); got != 3 {
		t.Fatalf("got %d terms, want 3", got)
	}
}

func TestPowZeroIsOne(t *testing.T) {
	x := symbolic.Var("x")
	if got := x.Add(symbolic.Int(5)).Pow(0); !got.Equal(symbolic.One()) {
		t.Fatalf("p^0 = %s, want 1", got)
	}
}

func TestTruncateDropsHighOrders(t *testing.T) {
	eps, x := symbolic.Var("eps"), symbolic.Var("x")
	p := symbolic.One().
		Add(eps.Mul(x)).
		Add(eps.Pow(2).Mul(x.Pow(2))).
		Add(eps.Pow(3))
	q := p.Truncate("eps", 2)
	if got := q.TermCount(); got != 3 {
		t.Fatalf("got %d terms, want 3", got)
	}
	if got := q.Degree("eps"); got != 2 {
		t.Fatalf("got degree %d, want 2", got)
	}
}

func TestCoeffExtractsSlice(t *testing.T) {
	eps, x := symbolic.Var("eps"), symbolic.Var("x")
	p := symbolic.One().
		Add(eps.Mul(x).Scale(big.NewRat(3, 1))).
		Add(eps.Pow(2).Mul(x.Pow(2)))
	got := p.Coeff("eps", 2)
	if want := x.Pow(2); !got.Equal(want) {
		t.Fatalf("coeff of eps^2 = %s, want %s", got, want)
	}
	if c := p.Coeff("eps", 0); !c.Equal(symbolic.One()) {
		t.Fatalf("coeff of eps^0 = %s, want 1", c)
	}
}

func TestSubstReplacesOneVariable(t *testing.T) {
	x, y := symbolic.Var("x"), symbolic.Var("y")
	p := x.Pow(2).Mul(y).Add(x)
	got := p.Subst("x", big.NewRat(2, 1))
	want := y.Scale(big.NewRat(4, 1)).Add(symbolic.Int(2))
	if !got.Equal(want) {
		t.Fatalf("subst x=2: %s, want %s", got, want)
	}
}

func TestEvalExactRational(t *testing.T) {
	x, y := symbolic.Var("x"), symbolic.Var("y")
	p := x.Pow(2).Add(y.Scale(big.NewRat(1, 3)))
	v, err := p.Eval(map[string]*big.Rat{
		"x": big.NewRat(3, 2),
		"y": big.NewRat(6, 1),
	})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if want := big.NewRat(17, 4); v.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", v, want)
	}
}

func TestEvalReportsMissingVariable(t *testing.T) {
	p := symbolic.Var("x").Mul(symbolic.Var("y"))
	_, err := p.Eval(map[string]*big.Rat{"x": big.NewRat(1, 1)})
	if err == nil {
		t.Fatal("expected error for missing variable")
	}
	if !strings.Contains(err.Error(), "y") {
		t.Fatalf("error %q does not name the missing variable", err)
	}
}

func TestStringIsDeterministic(t *testing.T) {
	build := func(order []string) *symbolic.Poly {
		p := symbolic.Zero()
		for _, name := range order {
			p = p.Add(symbolic.Var(name).Pow(2)).Add(symbolic.Var(name))
		}
		return p
	}
	a := build([]string{"a", "b", "c"})
	b := build([]string{"c", "a", "b"})
	if a.String() != b.String() {
		t.Fatalf("order-dependent rendering:\n%s\n%s", a, b)
	}
	if !a.Equal(b) {
		t.Fatal("polynomials built in different orders are not Equal")
	}
}

func TestStringSignsAndConstants(t *testing.T) {
	x := symbolic.Var("x")
	p := x.Scale(big.NewRat(-1, 2)).Add(symbolic.Int(1))
	if got, want := p.String(), "1 - 1/2*x"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := symbolic.Int(-3).String(), "-3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := symbolic.Zero().String(), "0"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLaTeXSubscriptsAndFractions(t *testing.T) {
	p := symbolic.Var("h01").Scale(big.NewRat(-1, 2))
	if got, want := p.LaTeX(), `-\frac{1}{2} h_{01}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	q := symbolic.Var("h01").Pow(2)
	if got, want := q.LaTeX(), `h_{01}^{2}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestVarsSorted(t *testing.T) {
	p := symbolic.Var("b").Mul(symbolic.Var("a")).Add(symbolic.Var("c"))
	got := p.Vars()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
