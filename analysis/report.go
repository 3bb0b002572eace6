package analysis

import (
	"context"

	"github.com/katalvlaran/snarkcover/core"
)

// Report summarizes the structure of one graph.
type Report struct {
	Order      int
	Size       int
	MinDegree  int
	MaxDegree  int
	Duplicates []core.Edge // second and later occurrences of a repeated pair
	Components int
	Bridges    []core.Edge
	Girth      int // NoCycle for forests
	Diameter   int // Disconnected unless Components <= 1
}

// Regular reports whether every vertex has the same degree.
// The empty graph is regular.
func (r Report) Regular() bool {
	return r.MinDegree == r.MaxDegree
}

// Cubic reports whether the graph is non-empty and 3-regular.
func (r Report) Cubic() bool {
	return r.Order > 0 && r.Regular() && r.MaxDegree == 3
}

// Snarklike reports the structural half of the snark definition:
// cubic, connected, bridgeless and without repeated edges. Chromatic
// index 4 is not checked.
func (r Report) Snarklike() bool {
	return r.Cubic() && r.Components == 1 && len(r.Bridges) == 0 && len(r.Duplicates) == 0
}

// Analyze computes the full Report of g.
// Complexity: O(E·(V+E)), dominated by the bridge search; the distance
// fields add O(V·(V+E)).
func Analyze(g core.Graph) Report {
	r, _ := AnalyzeContext(context.Background(), g)

	return r
}

// AnalyzeContext is Analyze with cancellation of the distance fields, which
// are the BFS-heavy part. On error the returned Report is zero.
func AnalyzeContext(ctx context.Context, g core.Graph) (Report, error) {
	girth, err := GirthContext(ctx, g)
	if err != nil {
		return Report{}, err
	}
	diam, err := DiameterContext(ctx, g)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Order:      g.Order(),
		Size:       g.Size(),
		Duplicates: Duplicates(g),
		Components: Components(g),
		Bridges:    Bridges(g),
		Girth:      girth,
		Diameter:   diam,
	}
	r.MinDegree, r.MaxDegree = DegreeRange(g)

	return r, nil
}

// DegreeRange returns the minimum and maximum vertex degree (0,0 for the empty graph).
func DegreeRange(g core.Graph) (int, int) {
	deg := g.Degrees()
	if len(deg) == 0 {
		return 0, 0
	}
	lo, hi := deg[0], deg[0]
	for _, d := range deg[1:] {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}

	return lo, hi
}

// Duplicates returns every edge that repeats an unordered pair seen earlier
// in edge order. A pair occurring k times contributes k-1 entries.
func Duplicates(g core.Graph) []core.Edge {
	seen := make(map[core.Edge]struct{}, g.Size())
	var out []core.Edge
	for _, e := range g.Edges() {
		k := e.Canonical()
		if _, ok := seen[k]; ok {
			out = append(out, e)
			continue
		}
		seen[k] = struct{}{}
	}

	return out
}
