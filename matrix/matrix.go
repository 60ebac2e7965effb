// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/equicut/equicut/core"
)

// rowNotFound marks a failed pivot search in reduceToRREF.
const rowNotFound = -1

// Matrix is a dense, row-major augmented matrix of float64 entries.
// The final column is the augmentation (constant) column; it is never
// chosen as a pivot column.
type Matrix struct {
	rows, cols int
	data       []float64 // flat backing storage, length rows*cols

	eps     float64
	reduced bool // true iff the most recent mutation was ReduceToRREF
}

// New creates a rows×cols zero matrix. cols counts the augmentation
// column, so cols must be at least 2 (one coefficient plus the
// constant). Returns ErrBadShape otherwise.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols < 2 {
		return nil, ErrBadShape
	}

	m := &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
		eps:  core.Epsilon(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// FromRows creates a matrix holding the given rows. Ragged rows are
// padded with zeros up to the longest row; all entries must be finite.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	m, err := New(len(rows), cols, opts...)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			m.data[r*cols+c] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns, the augmentation column included.
func (m *Matrix) Cols() int { return m.cols }

// Epsilon returns the tolerance this matrix compares against.
func (m *Matrix) Epsilon() float64 { return m.eps }

// At retrieves the entry at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.check(row, col); err != nil {
		return 0, err
	}

	return m.data[row*m.cols+col], nil
}

// Set assigns v at (row, col) and invalidates the reduced state.
// Returns ErrNaNInf for a non-finite v.
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.check(row, col); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	m.reduced = false
	m.data[row*m.cols+col] = v

	return nil
}

// SwapRows exchanges rows r1 and r2 and invalidates the reduced state.
func (m *Matrix) SwapRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.rows || r2 < 0 || r2 >= m.rows {
		return ErrOutOfRange
	}
	m.reduced = false
	m.swapRows(r1, r2)

	return nil
}

// ScaleRow multiplies row r by factor and invalidates the reduced
// state. The factor must be finite and non-NaN.
func (m *Matrix) ScaleRow(r int, factor float64) error {
	if r < 0 || r >= m.rows {
		return ErrOutOfRange
	}
	if err := checkFactor(factor); err != nil {
		return err
	}
	m.reduced = false
	m.scaleRow(r, factor)

	return nil
}

// AddScaledRow adds factor times the source row to the target row and
// invalidates the reduced state. The factor must be finite and
// non-NaN.
func (m *Matrix) AddScaledRow(target, source int, factor float64) error {
	if target < 0 || target >= m.rows || source < 0 || source >= m.rows {
		return ErrOutOfRange
	}
	if err := checkFactor(factor); err != nil {
		return err
	}
	m.reduced = false
	m.addScaledRow(target, source, factor)

	return nil
}

// ReduceToRREF performs Gauss-Jordan elimination in place and returns
// the rank: the number of pivot rows produced. Afterwards every pivot
// column holds a single 1 with zeros elsewhere, and HasSolution may be
// consulted.
func (m *Matrix) ReduceToRREF() int {
	var (
		rowsProcessed int
		k, r, ur      int
		pivot         float64
	)
	for k = 0; k < m.cols-1; k++ {
		// Topmost unprocessed row with a usable pivot at column k.
		ur = m.findPivotRow(k, rowsProcessed)
		if ur == rowNotFound {
			continue
		}

		m.swapRows(ur, rowsProcessed)
		pivot = m.data[rowsProcessed*m.cols+k]
		m.scaleRow(rowsProcessed, 1.0/pivot)

		for r = 0; r < m.rows; r++ {
			if r == rowsProcessed {
				continue
			}
			m.addScaledRow(r, rowsProcessed, -m.data[r*m.cols+k])
		}

		rowsProcessed++
	}

	m.reduced = true

	return rowsProcessed
}

// HasSolution reports whether the reduced system is consistent: no row
// may combine ~0 coefficients with a non-~0 augmentation entry.
// Returns ErrNotReduced unless the most recent mutation was a
// reduction.
func (m *Matrix) HasSolution() (bool, error) {
	if !m.reduced {
		return false, ErrNotReduced
	}

	var r, c, base int
	for r = 0; r < m.rows; r++ {
		base = r * m.cols
		zeroRow := true
		for c = 0; c < m.cols-1; c++ {
			if math.Abs(m.data[base+c]) > m.eps {
				zeroRow = false
				break
			}
		}
		if zeroRow && math.Abs(m.data[base+m.cols-1]) > m.eps {
			return false, nil
		}
	}

	return true, nil
}

// Clone returns a deep copy with the same tolerance and reduced state.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: data, eps: m.eps, reduced: m.reduced}
}

// String implements fmt.Stringer for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	var r, c int
	for r = 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c = 0; c < m.cols; c++ {
			fmt.Fprintf(&sb, "%g", m.data[r*m.cols+c])
			if c < m.cols-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// findPivotRow returns the topmost row index ≥ after whose entry at
// column col exceeds the tolerance, or rowNotFound.
func (m *Matrix) findPivotRow(col, after int) int {
	for r := after; r < m.rows; r++ {
		if math.Abs(m.data[r*m.cols+col]) > m.eps {
			return r
		}
	}

	return rowNotFound
}

// check validates the (row, col) pair against the matrix bounds.
func (m *Matrix) check(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// checkFactor rejects NaN and infinite row-operation factors.
func checkFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrNaNInf
	}

	return nil
}

// swapRows exchanges two rows without touching the reduced flag.
func (m *Matrix) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	b1, b2 := r1*m.cols, r2*m.cols
	for c := 0; c < m.cols; c++ {
		m.data[b1+c], m.data[b2+c] = m.data[b2+c], m.data[b1+c]
	}
}

// scaleRow multiplies a row in place without touching the reduced flag.
func (m *Matrix) scaleRow(r int, factor float64) {
	base := r * m.cols
	for c := 0; c < m.cols; c++ {
		m.data[base+c] *= factor
	}
}

// addScaledRow adds factor×source to target without touching the
// reduced flag.
func (m *Matrix) addScaledRow(target, source int, factor float64) {
	bt, bs := target*m.cols, source*m.cols
	for c := 0; c < m.cols; c++ {
		m.data[bt+c] += m.data[bs+c] * factor
	}
}
