package model

import "sort"

type NodeKind string

const (
	KindPod    NodeKind = "pod"
	KindPVC    NodeKind = "pvc"
	KindPV     NodeKind = "pv"
	KindVolume NodeKind = "volume"
)

// Edge relations, one per resolved reference type.
const (
	RelationUses       = "uses"       // Pod -> PVC
	RelationBoundTo    = "bound-to"   // PVC -> PV
	RelationAggregates = "aggregates" // PV -> Volume
)

// Node is one vertex of the storage topology graph. Namespace is empty for
// cluster-scoped kinds (pv, volume).
type Node struct {
	Kind      NodeKind `json:"kind"`
	Namespace string   `json:"namespace,omitempty"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Capacity  string   `json:"capacity,omitempty"`
	// Label is the display annotation consumed by renderers unmodified.
	Label string `json:"label"`
}

// ID returns the graph-wide node identity, "kind:namespace:name".
// Cluster-scoped kinds carry an empty namespace segment.
func (n Node) ID() string {
	return NodeID(n.Kind, n.Namespace, n.Name)
}

func NodeID(kind NodeKind, namespace, name string) string {
	return string(kind) + ":" + namespace + ":" + name
}

// Edge is a directed relation between two node IDs. Edges are derived
// during construction and carry no lifecycle of their own.
type Edge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Relation string `json:"relation"`
}

// Graph is a minimal explicit node/edge store. Node identity is unique per
// (kind, namespace, name); AddNode is first-write-wins.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	index map[string]int
}

func NewGraph() *Graph {
	return &Graph{index: map[string]int{}}
}

// AddNode inserts n unless a node with the same identity already exists,
// and returns the node's ID either way.
func (g *Graph) AddNode(n Node) string {
	id := n.ID()
	if _, ok := g.index[id]; ok {
		return id
	}
	g.index[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return id
}

// Node returns the node with the given ID, if present.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// SetStatus rewrites the status and label of an existing node.
func (g *Graph) SetStatus(id, status, label string) {
	if i, ok := g.index[id]; ok {
		g.Nodes[i].Status = status
		g.Nodes[i].Label = label
	}
}

// AddEdge records a directed relation. Both endpoints must already be nodes.
func (g *Graph) AddEdge(from, to, relation string) {
	g.Edges = append(g.Edges, Edge{From: from, To: to, Relation: relation})
}

// Sort orders nodes and edges deterministically so repeated builds over the
// same listings render byte-identically.
func (g *Graph) Sort() {
	sort.Slice(g.Nodes, func(i, j int) bool {
		return g.Nodes[i].ID() < g.Nodes[j].ID()
	})
	for i, n := range g.Nodes {
		g.index[n.ID()] = i
	}
	sort.Slice(g.Edges, func(i, j int) bool {
		a, b := g.Edges[i], g.Edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Relation < b.Relation
	})
}
