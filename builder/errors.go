// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "Goldberg: n=4 is even: builder: invalid parameter".
//   • Validation runs before any vertex or edge is produced, so a failing
//     call never returns a partial graph.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates that the snark parameter n is smaller than
// MinParameter or even. Raised by Goldberg, Flower and Build.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrInvalidSelection indicates an unknown snark family, either an
// out-of-range Family value or unparsable user input in ParseFamily.
var ErrInvalidSelection = errors.New("builder: invalid selection")

// builderErrorf prefixes a formatted message with the method name and wraps
// the sentinel so errors.Is keeps working.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
