// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// constants.go — shared limits, method tags and per-family role tables.

package builder

// MinParameter is the smallest admissible snark parameter n.
const MinParameter = 3

// Method tags used as error-context prefixes.
const (
	MethodGoldberg = "Goldberg"
	MethodFlower   = "Flower"
	MethodBuild    = "Build"
	MethodRole     = "Role"
	MethodVertex   = "Vertex"
)

// Goldberg roles in offset order: role k lives at k·n + i.
const (
	roleS = iota
	roleT
	roleZ
	roleV
	roleW
	roleX
	roleY
	roleU
	goldbergRoleCount
)

// Flower roles in offset order: root, then the three spokes A, B, C.
const (
	roleRoot = iota
	roleA
	roleB
	roleC
	flowerRoleCount
)

// Per-component edge counts; both families emit a constant number of edges
// per component (the Flower crossing replaces two edges by two edges).
const (
	goldbergEdgesPerComponent = 12
	flowerEdgesPerComponent   = 6
)

var goldbergRoleNames = [goldbergRoleCount]string{"s", "t", "z", "v", "w", "x", "y", "u"}

var flowerRoleNames = [flowerRoleCount]string{"root", "A", "B", "C"}
