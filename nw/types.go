// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a dense row-major table of DP scores.
// Cell (i,j) lives at data[i*c+j].
type Matrix struct {
	r, c int
	data []int
}

var _ fmt.Stringer = (*Matrix)(nil)

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]int, rows*cols)}
}

// Rows returns the number of rows (len(a)+1).
func (t *Matrix) Rows() int { return t.r }

// Cols returns the number of columns (len(b)+1).
func (t *Matrix) Cols() int { return t.c }

// At returns cell (i,j), or ErrOutOfRange.
func (t *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return 0, matrixErrorf("At", i, j, ErrOutOfRange)
	}

	return t.data[i*t.c+j], nil
}

// Final returns the bottom-right cell: the optimal global alignment score.
func (t *Matrix) Final() int {
	return t.data[len(t.data)-1]
}

// Row returns a copy of row i, or nil when i is out of range.
func (t *Matrix) Row(i int) []int {
	if i < 0 || i >= t.r {
		return nil
	}
	out := make([]int, t.c)
	copy(out, t.data[i*t.c:(i+1)*t.c])

	return out
}

// String renders the table one row per line, cells separated by tabs.
func (t *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < t.r; i++ {
		for j := 0; j < t.c; j++ {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.Itoa(t.data[i*t.c+j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// at is the unchecked accessor used inside the DP loops.
func (t *Matrix) at(i, j int) int {
	return t.data[i*t.c+j]
}

func (t *Matrix) set(i, j, v int) {
	t.data[i*t.c+j] = v
}
