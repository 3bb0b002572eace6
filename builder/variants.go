// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// variants.go — the Family tagged variant and its parsing.
//
// Design:
//   • One constructor per family; Family selects between them instead of
//     parallel near-identical entry points.
//   • ParseFamily accepts both the menu digits ("1","2") and the names.

package builder

import "strings"

// Family enumerates the supported snark families.
type Family int

// Enum values (stable ordering; the menu digits are value+1).
const (
	FamilyGoldberg Family = iota // 8 roles per component
	FamilyFlower                 // 4 roles per component
)

// Families lists every supported family in menu order.
var Families = []Family{FamilyGoldberg, FamilyFlower}

// String returns the display name used in reports ("Goldberg", "Flower").
func (f Family) String() string {
	switch f {
	case FamilyGoldberg:
		return "Goldberg"
	case FamilyFlower:
		return "Flower"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool {
	return f == FamilyGoldberg || f == FamilyFlower
}

// RolesPerComponent returns how many vertices one component contributes.
func (f Family) RolesPerComponent() int {
	switch f {
	case FamilyGoldberg:
		return goldbergRoleCount
	case FamilyFlower:
		return flowerRoleCount
	default:
		return 0
	}
}

// ParseFamily maps user input to a Family. Accepted spellings, case-insensitive
// and trimmed: "1"/"goldberg", "2"/"flower".
// Anything else returns ErrInvalidSelection.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "goldberg":
		return FamilyGoldberg, nil
	case "2", "flower":
		return FamilyFlower, nil
	default:
		return 0, builderErrorf("ParseFamily", ErrInvalidSelection, "unknown family %q", s)
	}
}

// Set implements pflag.Value so a Family can be bound directly to a flag.
func (f *Family) Set(s string) error {
	v, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// Type implements pflag.Value.
func (f *Family) Type() string {
	return "family"
}
