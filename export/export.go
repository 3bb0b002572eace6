// Package export renders a core.Graph in a handful of text formats:
//
//   - FormatEdges:  the tuple list "[(0, 3), (3, 1), ...]" printed by reports.
//   - FormatGraph6: the graph6 string (gonum graph/encoding/graph6).
//   - FormatDIMACS: "p edge N M" followed by one 1-based "e u v" line per edge.
//   - FormatYAML:   order, size and the edge pairs (gopkg.in/yaml.v2).
//
// All encoders are deterministic: the same graph always yields the same bytes.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/snarkcover/core"
)

// ErrUnknownFormat indicates an unsupported format name or value.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format selects an encoding.
type Format int

const (
	FormatEdges Format = iota
	FormatGraph6
	FormatDIMACS
	FormatYAML
)

var formatNames = map[Format]string{
	FormatEdges:  "edges",
	FormatGraph6: "graph6",
	FormatDIMACS: "dimacs",
	FormatYAML:   "yaml",
}

// String returns the flag spelling of f.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}

	return "unknown"
}

// ParseFormat maps a flag spelling to a Format.
func ParseFormat(s string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == want {
			return f, nil
		}
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// Write encodes g in format f to w. Every format ends with a newline.
func Write(w io.Writer, g core.Graph, f Format) error {
	var (
		out string
		err error
	)
	switch f {
	case FormatEdges:
		out = EdgeList(g) + "\n"
	case FormatGraph6:
		out = Graph6(g) + "\n"
	case FormatDIMACS:
		out = DIMACS(g)
	case FormatYAML:
		var b []byte
		b, err = YAML(g)
		out = string(b)
	default:
		return fmt.Errorf("Write: format=%d: %w", int(f), ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Write(%s): %w", f, err)
	}
	if _, err = io.WriteString(w, out); err != nil {
		return fmt.Errorf("Write(%s): %w", f, err)
	}

	return nil
}

// EdgeList renders the edges as "[(u, v), (u, v), ...]" in insertion order.
func EdgeList(g core.Graph) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// IntList renders vertex indices as "[a, b, c]".
func IntList(vs []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
