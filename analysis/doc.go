// Package analysis inspects the structure of a core.Graph: degree profile,
// regularity, repeated edges, connectivity and bridges.
//
// It exists to check, rather than trust, the structural claims made about
// the snark constructors: every snark must come out cubic, connected,
// bridgeless and free of repeated pairs.
//
// Connectivity is delegated to gonum (graph/simple + graph/topo) through the
// Undirected view; the same view feeds the graph6 encoder in package export.
package analysis
