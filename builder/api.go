// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract:
//   • One dispatcher: Build(family, n). Constructors live in impl_*.go.
//   • No options, no global state: (family, n) fully determines the result.
//   • Never panic; return sentinel errors wrapped with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snarkcover/core"
)

// Build routes (family, n) to the matching constructor.
//
// Errors:
//   - ErrInvalidSelection for an unknown family (checked first).
//   - ErrInvalidParameter for n < MinParameter or even n.
//
// Complexity: that of the selected constructor, O(n).
func Build(family Family, n int) (core.Graph, error) {
	var (
		g   core.Graph
		err error
	)
	switch family {
	case FamilyGoldberg:
		g, err = Goldberg(n)
	case FamilyFlower:
		g, err = Flower(n)
	default:
		return core.Graph{}, builderErrorf(MethodBuild, ErrInvalidSelection, "family=%d", int(family))
	}
	if err != nil {
		return core.Graph{}, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return g, nil
}

// Name returns the instance name "<Family>_<n>", e.g. "Flower_5".
func Name(family Family, n int) string {
	return fmt.Sprintf("%s_%d", family, n)
}

// VertexCount returns the order of the (family, n) snark without building it:
// 8n for Goldberg, 4n for Flower. It validates like Build.
func VertexCount(family Family, n int) (int, error) {
	if !family.Valid() {
		return 0, builderErrorf(MethodBuild, ErrInvalidSelection, "family=%d", int(family))
	}
	if err := validateParameter(family.String(), n); err != nil {
		return 0, err
	}

	return family.RolesPerComponent() * n, nil
}

// EdgeCount returns the size of the (family, n) snark without building it:
// 12n for Goldberg, 6n for Flower. It validates like Build.
func EdgeCount(family Family, n int) (int, error) {
	if _, err := VertexCount(family, n); err != nil {
		return 0, err
	}
	if family == FamilyGoldberg {
		return goldbergEdgesPerComponent * n, nil
	}

	return flowerEdgesPerComponent * n, nil
}
