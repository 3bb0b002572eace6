package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/snarkcover/builder"
	"github.com/katalvlaran/snarkcover/core"
	"github.com/katalvlaran/snarkcover/export"
)

func triangle() core.Graph {
	return core.MustNew(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
}

func TestEdgeList(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[(0, 1), (1, 2), (2, 0)]", export.EdgeList(triangle()))
	require.Equal(t, "[]", export.EdgeList(core.Graph{}))
	require.Equal(t, "[4, 0, 7]", export.IntList([]int{4, 0, 7}))
	require.Equal(t, "[]", export.IntList(nil))
}

func TestDIMACS(t *testing.T) {
	t.Parallel()

	want := "p edge 3 3\ne 1 2\ne 2 3\ne 3 1\n"
	require.Equal(t, want, export.DIMACS(triangle()))
}

func TestGraph6(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Bw", export.Graph6(triangle()))
	require.True(t, graph6.IsValid(graph6.Graph(export.Graph6(triangle()))))
	require.False(t, graph6.IsValid(graph6.Graph("Bww")), "trailing byte must invalidate the encoding")

	g, err := builder.Flower(5)
	require.NoError(t, err)
	dec := graph6.Graph(export.Graph6(g))
	require.True(t, graph6.IsValid(dec))
	require.Equal(t, g.Order(), dec.Nodes().Len())
	for _, e := range g.Edges() {
		require.Truef(t, dec.HasEdgeBetween(int64(e.U), int64(e.V)), "edge %s lost in graph6", e)
	}
}

func TestYAML(t *testing.T) {
	t.Parallel()

	b, err := export.YAML(triangle())
	require.NoError(t, err)

	var doc struct {
		Order int      `yaml:"order"`
		Size  int      `yaml:"size"`
		Edges [][2]int `yaml:"edges"`
	}
	require.NoError(t, yaml.Unmarshal(b, &doc))
	require.Equal(t, 3, doc.Order)
	require.Equal(t, 3, doc.Size)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, doc.Edges)
}

func TestWriteAndParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"edges", "graph6", "dimacs", "yaml", " YAML "} {
		f, err := export.ParseFormat(name)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, export.Write(&buf, triangle(), f))
		require.NotEmpty(t, buf.String())
		require.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
	}

	_, err := export.ParseFormat("svg")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
	require.ErrorIs(t, export.Write(&bytes.Buffer{}, triangle(), export.Format(42)), export.ErrUnknownFormat)
	require.Equal(t, "unknown", export.Format(42).String())
	require.Equal(t, "graph6", export.FormatGraph6.String())
}
