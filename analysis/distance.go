package analysis

import (
	"context"

	"github.com/katalvlaran/snarkcover/bfs"
	"github.com/katalvlaran/snarkcover/core"
)

// NoCycle is the Girth of a forest; Disconnected is the Diameter of a graph
// with more than one component.
const (
	NoCycle      = 0
	Disconnected = -1
)

// Girth returns the length of a shortest cycle of g, or NoCycle.
// A repeated edge counts as a 2-cycle and a loop-free simple graph has
// girth ≥ 3.
// Complexity: O(V·(V+E)).
func Girth(g core.Graph) int {
	girth, _ := GirthContext(context.Background(), g)

	return girth
}

// GirthContext is Girth with cancellation: it stops between BFS steps once
// ctx is done and returns ctx.Err().
//
// One BFS per root: every non-tree edge (u,w) closes a walk of length
// Depth[u]+Depth[w]+1 through the root, which contains a cycle at most that
// long, and the bound is attained when the root lies on a shortest cycle.
// That closing edge has both ends within depth girth/2, so once a cycle of
// length best is known each later search stops at depth best/2.
func GirthContext(ctx context.Context, g core.Graph) (int, error) {
	if len(Duplicates(g)) > 0 {
		return 2, nil
	}

	best := NoCycle
	edges := g.Edges()
	for root := 0; root < g.Order(); root++ {
		// best/2 is 0, no limit, until a cycle is found
		res, err := bfs.BFS(g, root, bfs.WithContext(ctx), bfs.WithMaxDepth(best/2))
		if err != nil {
			return NoCycle, err
		}
		for _, e := range edges {
			if !res.Reached(e.U) || !res.Reached(e.V) || res.Parent[e.U] == e.V || res.Parent[e.V] == e.U {
				continue
			}
			if l := res.Depth[e.U] + res.Depth[e.V] + 1; best == NoCycle || l < best {
				best = l
			}
		}
	}

	return best, nil
}

// Diameter returns the largest distance between two vertices of g, or
// Disconnected. The empty graph has diameter 0.
// Complexity: O(V·(V+E)).
func Diameter(g core.Graph) int {
	diam, _ := DiameterContext(context.Background(), g)

	return diam
}

// DiameterContext is Diameter with cancellation; see GirthContext.
func DiameterContext(ctx context.Context, g core.Graph) (int, error) {
	diam := 0
	for root := 0; root < g.Order(); root++ {
		res, err := bfs.BFS(g, root, bfs.WithContext(ctx))
		if err != nil {
			return 0, err
		}
		if len(res.Order) != g.Order() {
			return Disconnected, nil
		}
		if ecc := res.Eccentricity(); ecc > diam {
			diam = ecc
		}
	}

	return diam, nil
}
