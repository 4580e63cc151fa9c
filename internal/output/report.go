package output

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// WriteReport writes a self-contained dark-mode HTML view of the graph:
// one table of nodes with their status annotations, one table of edges.
// It is the fallback for environments without a Graphviz toolchain.
func WriteReport(out io.Writer, g *model.Graph) error {
	var buf bytes.Buffer
	buildReport(&buf, g)
	_, err := out.Write(buf.Bytes())
	return err
}

func buildReport(buf *bytes.Buffer, g *model.Graph) {
	w := func(s string) { buf.WriteString(s) }
	wf := func(f string, a ...any) { buf.WriteString(fmt.Sprintf(f, a...)) }
	e := html.EscapeString

	w(`<!DOCTYPE html><html lang="en"><head>
<meta charset="utf-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>Cluster Storage Graph</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{background:#0d1117;color:#c9d1d9;font-family:system-ui,"Segoe UI",Arial,sans-serif;font-size:14px;line-height:1.5;padding:20px}
h1{color:#f0f6fc;font-size:1.3em;margin-bottom:4px}
h2{color:#f0f6fc;font-size:1.05em;margin:16px 0 8px}
.meta{color:#8b949e;font-size:.82em;margin-bottom:12px}
table{width:100%;border-collapse:collapse;margin-top:6px;font-size:.86em}
th{background:#161b22;color:#8b949e;text-align:left;padding:7px 9px;border-bottom:1px solid #30363d;white-space:nowrap}
td{padding:6px 9px;border-bottom:1px solid #21262d;vertical-align:top}
.kind{display:inline-block;padding:2px 8px;border-radius:10px;font-size:.82em;font-weight:700}
.kind-pod{background:#1f3a5f;color:#79c0ff}
.kind-pvc{background:#4d3800;color:#f2cc60}
.kind-pv{background:#0f3d2e;color:#56d364}
.kind-volume{background:#30363d;color:#c9d1d9}
.label{white-space:pre-line;color:#8b949e}
</style></head><body>
<h1>Cluster Storage Graph</h1>
`)
	wf(`<div class="meta">%d nodes, %d edges</div>`, len(g.Nodes), len(g.Edges))

	w(`<h2>Nodes</h2><table><tr><th>Kind</th><th>Namespace</th><th>Name</th><th>Status</th><th>Capacity</th><th>Annotation</th></tr>`)
	for _, n := range g.Nodes {
		wf(`<tr><td><span class="kind kind-%s">%s</span></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="label">%s</td></tr>`,
			n.Kind, strings.ToUpper(string(n.Kind)), e(n.Namespace), e(n.Name), e(n.Status), e(n.Capacity), e(n.Label))
	}
	w(`</table>`)

	w(`<h2>Edges</h2><table><tr><th>From</th><th>Relation</th><th>To</th></tr>`)
	for _, edge := range g.Edges {
		wf(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`, e(edge.From), e(edge.Relation), e(edge.To))
	}
	w(`</table></body></html>`)
}
