package export

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/snarkcover/analysis"
	"github.com/katalvlaran/snarkcover/core"
)

// Graph6 returns the graph6 encoding of g. Parallel edges are not
// representable in graph6 and collapse.
func Graph6(g core.Graph) string {
	return string(graph6.Encode(analysis.Undirected(g)))
}

// DIMACS renders g in the DIMACS edge format with 1-based vertices.
func DIMACS(g core.Graph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p edge %d %d\n", g.Order(), g.Size())
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "e %d %d\n", e.U+1, e.V+1)
	}

	return sb.String()
}

// yamlGraph is the YAML document layout.
type yamlGraph struct {
	Order int      `yaml:"order"`
	Size  int      `yaml:"size"`
	Edges [][2]int `yaml:"edges,flow"`
}

// YAML marshals g as {order, size, edges: [[u, v], ...]}.
func YAML(g core.Graph) ([]byte, error) {
	doc := yamlGraph{Order: g.Order(), Size: g.Size(), Edges: make([][2]int, 0, g.Size())}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]int{e.U, e.V})
	}

	return yaml.Marshal(doc)
}
