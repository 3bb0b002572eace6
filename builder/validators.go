// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// validators.go — parameter checks shared by every constructor.

package builder

// validateParameter ensures n ≥ MinParameter and n odd.
// The size check runs first so that n=2 reports "too small" rather than "even".
// Complexity: O(1).
func validateParameter(method string, n int) error {
	if n < MinParameter {
		return builderErrorf(method, ErrInvalidParameter, "n=%d is below %d", n, MinParameter)
	}
	if n%2 == 0 {
		return builderErrorf(method, ErrInvalidParameter, "n=%d is even", n)
	}

	return nil
}

// offset returns the first vertex index of the given role: role·n.
func offset(role, n int) int {
	return role * n
}
