// SPDX-License-Identifier: MIT
// Package: snarkcover/cover
//
// errors.go — sentinel errors for the cover package.

package cover

import "errors"

// ErrSolverInconclusive is returned when the engine reports any status other
// than Optimal, or when its Optimal answer fails verification.
// No cover accompanies this error.
var ErrSolverInconclusive = errors.New("cover: solver inconclusive")

// ErrInvalidModel indicates a malformed model: a term referencing a variable
// outside [0,NumVars), an empty constraint, or a nil solver.
var ErrInvalidModel = errors.New("cover: invalid model")

// ErrUnsupportedModel is returned by engines that cannot encode part of a
// model (for example non-unit coefficients in a pure SAT engine).
var ErrUnsupportedModel = errors.New("cover: unsupported model")
