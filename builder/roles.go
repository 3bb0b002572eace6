// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// roles.go — translation between vertex indices and (role, component) pairs.
//
// Every vertex of a (family, n) snark decomposes uniquely as
// role_offset + i with role_offset = k·n (k-th role) and i ∈ [0, n).

package builder

import "fmt"

// RoleNames returns the role names of family in offset order.
// Goldberg: s t z v w x y u. Flower: root A B C.
func RoleNames(family Family) []string {
	switch family {
	case FamilyGoldberg:
		return append([]string(nil), goldbergRoleNames[:]...)
	case FamilyFlower:
		return append([]string(nil), flowerRoleNames[:]...)
	default:
		return nil
	}
}

// Role decomposes vertex into its role name and component index.
//
// Errors: ErrInvalidSelection (family), ErrInvalidParameter (n), and
// ErrInvalidParameter when vertex is outside [0, VertexCount).
func Role(family Family, n, vertex int) (string, int, error) {
	order, err := VertexCount(family, n)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", MethodRole, err)
	}
	if vertex < 0 || vertex >= order {
		return "", 0, builderErrorf(MethodRole, ErrInvalidParameter, "vertex %d outside [0,%d)", vertex, order)
	}

	names := RoleNames(family)
	return names[vertex/n], vertex % n, nil
}

// Vertex is the inverse of Role: it returns offset(role) + component.
func Vertex(family Family, n int, role string, component int) (int, error) {
	if _, err := VertexCount(family, n); err != nil {
		return 0, fmt.Errorf("%s: %w", MethodVertex, err)
	}
	if component < 0 || component >= n {
		return 0, builderErrorf(MethodVertex, ErrInvalidParameter, "component %d outside [0,%d)", component, n)
	}
	for k, name := range RoleNames(family) {
		if name == role {
			return offset(k, n) + component, nil
		}
	}

	return 0, builderErrorf(MethodVertex, ErrInvalidParameter, "unknown %s role %q", family, role)
}

// Label renders vertex as "<role>_<component>", e.g. "t_2" or "B_0".
// Invalid input yields the bare decimal index so reports never fail on labels.
func Label(family Family, n, vertex int) string {
	role, i, err := Role(family, n, vertex)
	if err != nil {
		return fmt.Sprint(vertex)
	}

	return fmt.Sprintf("%s_%d", role, i)
}
