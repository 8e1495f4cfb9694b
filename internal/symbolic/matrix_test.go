package symbolic_test

import (
	"math/big"
	"testing"

	"gravlab/internal/symbolic"
)

func diag(vals ...int64) *symbolic.Matrix {
	m := symbolic.NewMatrix(len(vals), len(vals))
	for i, v := range vals {
		m.Set(i, i, symbolic.Int(v))
	}
	return m
}

func TestIdentityTrace(t *testing.T) {
	tr := symbolic.Identity(4).Trace()
	if !tr.Equal(symbolic.Int(4)) {
		t.Fatalf("trace of I4 = %s, want 4", tr)
	}
}

func TestDiagonalTracePowers(t *testing.T) {
	m := diag(1, 2, 3, 4)
	if tr := m.Trace(); !tr.Equal(symbolic.Int(10)) {
		t.Fatalf("trace = %s, want 10", tr)
	}
	if tr2 := m.Pow(2).Trace(); !tr2.Equal(symbolic.Int(30)) {
		t.Fatalf("trace of square = %s, want 30", tr2)
	}
}

func TestMulKnownProduct(t *testing.T) {
	a := symbolic.NewMatrix(2, 2)
	a.Set(0, 0, symbolic.Int(1))
	a.Set(0, 1, symbolic.Int(2))
	a.Set(1, 0, symbolic.Int(3))
	a.Set(1, 1, symbolic.Int(4))

	sq := a.Mul(a)
	want := [][]int64{{7, 10}, {15, 22}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !sq.At(i, j).Equal(symbolic.Int(want[i][j])) {
				t.Fatalf("entry (%d,%d) = %s, want %d", i, j, sq.At(i, j), want[i][j])
			}
		}
	}
}

func TestSymbolicProductTrace(t *testing.T) {
	// For m = [[0, x], [x, 0]], m^2 = x^2 * I, so tr(m^2) = 2x^2.
	x := symbolic.Var("x")
	m := symbolic.NewMatrix(2, 2)
	m.Set(0, 1, x)
	m.Set(1, 0, x)
	got := m.Pow(2).Trace()
	if want := x.Pow(2).Scale(big.NewRat(2, 1)); !got.Equal(want) {
		t.Fatalf("tr(m^2) = %s, want %s", got, want)
	}
}

func TestIsSymmetric(t *testing.T) {
	m := symbolic.NewMatrix(2, 2)
	m.Set(0, 1, symbolic.Var("a"))
	m.Set(1, 0, symbolic.Var("a"))
	if !m.IsSymmetric() {
		t.Fatal("expected symmetric")
	}
	m.Set(1, 0, symbolic.Var("b"))
	if m.IsSymmetric() {
		t.Fatal("expected asymmetric")
	}
}

func TestTruncateEntrywise(t *testing.T) {
	eps := symbolic.Var("eps")
	m := symbolic.NewMatrix(1, 1)
	m.Set(0, 0, symbolic.One().Add(eps).Add(eps.Pow(3)))
	got := m.Truncate("eps", 1).At(0, 0)
	if want := symbolic.One().Add(eps); !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestEvalMatrix(t *testing.T) {
	m := symbolic.NewMatrix(1, 2)
	m.Set(0, 0, symbolic.Var("x"))
	m.Set(0, 1, symbolic.Var("x").Pow(2))
	vals, err := m.Eval(map[string]*big.Rat{"x": big.NewRat(3, 1)})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if vals[0][0].Cmp(big.NewRat(3, 1)) != 0 || vals[0][1].Cmp(big.NewRat(9, 1)) != 0 {
		t.Fatalf("got [%s %s], want [3 9]", vals[0][0], vals[0][1])
	}
}
