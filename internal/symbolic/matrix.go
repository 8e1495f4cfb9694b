package symbolic

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is a dense matrix of polynomials. Entries are never nil; a fresh
// matrix starts at zero. Operations panic on mismatched dimensions.
type Matrix struct {
	rows, cols int
	data       []*Poly
}

// NewMatrix returns a rows by cols matrix of zero polynomials.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("symbolic: invalid dimensions %dx%d", rows, cols))
	}
	data := make([]*Poly, rows*cols)
	for i := range data {
		data[i] = Zero()
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Identity returns the n by n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, One())
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) *Poly {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// Set stores p at row i, column j.
func (m *Matrix) Set(i, j int, p *Poly) {
	m.check(i, j)
	m.data[i*m.cols+j] = p
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("symbolic: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Add returns m + o.
func (m *Matrix) Add(o *Matrix) *Matrix {
	m.sameShape(o)
	r := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i].Add(o.data[i])
	}
	return r
}

// Sub returns m - o.
func (m *Matrix) Sub(o *Matrix) *Matrix {
	m.sameShape(o)
	r := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i].Sub(o.data[i])
	}
	return r
}

// Scale returns c * m.
func (m *Matrix) Scale(c *big.Rat) *Matrix {
	r := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i].Scale(c)
	}
	return r
}

// Mul returns the matrix product m * o. It panics unless m.Cols() equals
// o.Rows().
func (m *Matrix) Mul(o *Matrix) *Matrix {
	if m.cols != o.rows {
		panic(fmt.Sprintf("symbolic: cannot multiply %dx%d by %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
	r := NewMatrix(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			sum := Zero()
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.At(i, k).Mul(o.At(k, j)))
			}
			r.Set(i, j, sum)
		}
	}
	return r
}

// Pow returns the n-th matrix power of a square matrix, with Pow(0) the
// identity. It panics on negative n or a non-square receiver.
func (m *Matrix) Pow(n int) *Matrix {
	m.mustSquare()
	if n < 0 {
		panic(fmt.Sprintf("symbolic: negative matrix power %d", n))
	}
	r := Identity(m.rows)
	for i := 0; i < n; i++ {
		r = r.Mul(m)
	}
	return r
}

// Truncate applies Poly.Truncate entrywise.
func (m *Matrix) Truncate(name string, max int) *Matrix {
	r := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i].Truncate(name, max)
	}
	return r
}

// Trace returns the sum of the diagonal entries of a square matrix.
func (m *Matrix) Trace() *Poly {
	m.mustSquare()
	sum := Zero()
	for i := 0; i < m.rows; i++ {
		sum = sum.Add(m.At(i, i))
	}
	return sum
}

// IsSymmetric reports whether m equals its transpose.
func (m *Matrix) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if !m.At(i, j).Equal(m.At(j, i)) {
				return false
			}
		}
	}
	return true
}

// Eval evaluates every entry with vals, returning exact rationals.
func (m *Matrix) Eval(vals map[string]*big.Rat) ([][]*big.Rat, error) {
	out := make([][]*big.Rat, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]*big.Rat, m.cols)
		for j := 0; j < m.cols; j++ {
			v, err := m.At(i, j).Eval(vals)
			if err != nil {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, err)
			}
			out[i][j] = v
		}
	}
	return out, nil
}

// String renders the matrix row by row, one entry per cell.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.At(i, j).String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}

func (m *Matrix) sameShape(o *Matrix) {
	if m.rows != o.rows || m.cols != o.cols {
		panic(fmt.Sprintf("symbolic: shape mismatch %dx%d vs %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
}

func (m *Matrix) mustSquare() {
	if m.rows != m.cols {
		panic(fmt.Sprintf("symbolic: %dx%d matrix is not square", m.rows, m.cols))
	}
}
