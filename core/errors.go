// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for scoring and alignment validation.
var (
	// ErrLengthMismatch indicates the two rows of an alignment differ in length.
	ErrLengthMismatch = errors.New("core: alignment rows differ in length")

	// ErrDoubleGap indicates a column holding a gap in both rows.
	ErrDoubleGap = errors.New("core: gap in both rows of a column")

	// ErrReconstruct indicates a row whose non-gap symbols do not spell its input sequence.
	ErrReconstruct = errors.New("core: alignment row does not reconstruct its input")

	// ErrOverflow indicates scores for the given lengths and params may exceed int.
	ErrOverflow = errors.New("core: score may overflow int")

	// ErrNegativeLength indicates a negative sequence length.
	ErrNegativeLength = errors.New("core: negative sequence length")
)

// coreErrorf prefixes err with the calling method and its arguments.
func coreErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
