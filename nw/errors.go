// SPDX-License-Identifier: MIT

package nw

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a Matrix access outside [0,Rows)×[0,Cols).
var ErrOutOfRange = errors.New("nw: index out of range")

func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
