// SPDX-License-Identifier: MIT

package hirschberg

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy indicates an Options.Strategy (or name) that is not defined.
var ErrUnknownStrategy = errors.New("hirschberg: unknown strategy")

func hirschbergErrorf(method string, arg interface{}, err error) error {
	return fmt.Errorf("%s(%v): %w", method, arg, err)
}
