package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// kind-based fill colors, roughly matching the spring-layout palette the
// graph is usually rendered with.
var dotFill = map[model.NodeKind]string{
	model.KindPod:    "lightblue",
	model.KindPVC:    "lightyellow",
	model.KindPV:     "lightgreen",
	model.KindVolume: "lightgrey",
}

var dotShape = map[model.NodeKind]string{
	model.KindPod:    "box",
	model.KindPVC:    "ellipse",
	model.KindPV:     "ellipse",
	model.KindVolume: "cylinder",
}

// WriteDOT renders the graph as a Graphviz digraph. Node order follows the
// graph's sorted order, so identical graphs produce identical output.
func WriteDOT(w io.Writer, g *model.Graph) error {
	var buf bytes.Buffer
	wf := func(f string, a ...any) { fmt.Fprintf(&buf, f, a...) }

	buf.WriteString("digraph storage {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [style=filled, fontname=\"Helvetica\"];\n\n")

	for _, n := range g.Nodes {
		wf("  %s [label=%s, shape=%s, fillcolor=%s];\n",
			dotQuote(n.ID()), dotQuote(n.Label), dotShape[n.Kind], dotFill[n.Kind])
	}
	buf.WriteString("\n")
	for _, e := range g.Edges {
		wf("  %s -> %s [label=%s];\n", dotQuote(e.From), dotQuote(e.To), dotQuote(e.Relation))
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// dotQuote escapes a value as a DOT double-quoted string. Labels carry real
// newlines; DOT wants them as \n escapes.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
