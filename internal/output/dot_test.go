package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glovecchi0/pods-graph/internal/model"
)

func testGraph() *model.Graph {
	g := model.NewGraph()
	pod := g.AddNode(model.Node{
		Kind: model.KindPod, Namespace: "default", Name: "web-1",
		Status: "Running", Label: "web-1\nStatus: Running",
	})
	pvc := g.AddNode(model.Node{
		Kind: model.KindPVC, Namespace: "default", Name: "data-1",
		Status: "Bound", Capacity: "10Gi",
		Label: "data-1\nCapacity: 10Gi\nStatus: Bound\nType: PVC",
	})
	g.AddEdge(pod, pvc, model.RelationUses)
	g.Sort()
	return g
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, testGraph()); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "digraph storage {") {
		t.Errorf("output does not open a digraph:\n%s", out)
	}
	if !strings.Contains(out, `"pod:default:web-1" [label="web-1\nStatus: Running"`) {
		t.Errorf("pod node line missing:\n%s", out)
	}
	if !strings.Contains(out, `"pod:default:web-1" -> "pvc:default:data-1" [label="uses"];`) {
		t.Errorf("uses edge line missing:\n%s", out)
	}
	// labels carry escaped newlines, never raw ones inside quotes
	if strings.Contains(out, "Status: Running\nStatus") {
		t.Error("raw newline leaked into a DOT label")
	}
}

func TestWriteDOTStable(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteDOT(&a, testGraph()); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	if err := WriteDOT(&b, testGraph()); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	if a.String() != b.String() {
		t.Error("identical graphs rendered differently")
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, testGraph()); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "2 nodes, 1 edges") {
		t.Errorf("report meta line wrong:\n%s", out)
	}
	if !strings.Contains(out, "web-1") || !strings.Contains(out, "data-1") {
		t.Error("report does not list the graph's nodes")
	}
	if !strings.Contains(out, "uses") {
		t.Error("report does not list the uses edge")
	}
}
