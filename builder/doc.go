// Package builder constructs the two snark families used by snarkcover:
// Goldberg snarks and Flower snarks, each parameterized by a single odd
// integer n ≥ 3 (the number of repeated components).
//
// The package offers the following key components:
//
//   - Constructors:
//     – Goldberg(n):   8n vertices, 12n edges.
//     – Flower(n):     4n vertices, 6n edges, crossed B/C wiring on the last component.
//   - Dispatch:
//     – Family:        tagged variant {FamilyGoldberg, FamilyFlower}; ParseFamily for user input.
//     – Build:         routes (family, n) to the right constructor.
//     – Name:          instance name such as "Goldberg_3" for logs and models.
//   - Role tables:
//     – every vertex is role_offset + i, with role_offset = k·n for the k-th role
//       and i ∈ [0,n) the component index. Role/Vertex/Label translate between
//       the two views.
//   - Validation:
//     – validateParameter: n must be odd and ≥ MinParameter.
//
// Guarantees:
//
//   - Purity: constructors depend on n only; calling them twice yields equal
//     graphs with identical edge sequences.
//   - Stable emission order: edges are appended per component in a fixed,
//     documented order so printed edge lists can be compared verbatim.
//   - Sentinel errors (ErrInvalidParameter, ErrInvalidSelection) wrapped with
//     the constructor name; branch with errors.Is.
package builder
