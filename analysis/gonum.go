package analysis

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/snarkcover/core"
)

// Undirected returns a gonum view of g with node IDs 0..Order()-1.
// Parallel edges collapse into one gonum edge; use Duplicates to see them.
// Complexity: O(V+E).
func Undirected(g core.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return ug
}

// Components returns the number of connected components of g.
// The empty graph has zero components; each isolated vertex is one.
// Complexity: O(V+E).
func Components(g core.Graph) int {
	return len(topo.ConnectedComponents(Undirected(g)))
}

// Connected reports whether g has exactly one component.
func Connected(g core.Graph) bool {
	return Components(g) == 1
}

// Bridges returns the edges whose removal increases the number of
// components, in edge order. An edge with a parallel twin is never a bridge.
//
// Removal is tested one edge at a time on the gonum view, which is plenty
// for the snark sizes this module deals with.
// Complexity: O(E·(V+E)).
func Bridges(g core.Graph) []core.Edge {
	ug := Undirected(g)
	base := len(topo.ConnectedComponents(ug))

	multiplicity := make(map[core.Edge]int, g.Size())
	for _, e := range g.Edges() {
		multiplicity[e.Canonical()]++
	}

	var out []core.Edge
	for _, e := range g.Edges() {
		if multiplicity[e.Canonical()] > 1 {
			continue
		}
		ug.RemoveEdge(int64(e.U), int64(e.V))
		if len(topo.ConnectedComponents(ug)) > base {
			out = append(out, e)
		}
		ug.SetEdge(ug.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return out
}

// nodeIDs converts gonum nodes to vertex indices, keeping their order.
func nodeIDs(nodes []graph.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}

	return out
}

// ComponentSets returns the vertex sets of the connected components of g.
// Order of components and of vertices within them follows gonum's traversal.
func ComponentSets(g core.Graph) [][]int {
	comps := topo.ConnectedComponents(Undirected(g))
	out := make([][]int, len(comps))
	for i, c := range comps {
		out[i] = nodeIDs(c)
	}

	return out
}
