package syntax

import "sort"

// Compile-time interface checks.
var (
	_ Tree = (*Flat)(nil)
	_ Tree = (*Static)(nil)
)

// Flat is a Tree over sorted, non-overlapping nodes, as produced by Scan.
type Flat struct {
	length int
	nodes  []Node
}

// NewFlat creates a Flat tree for a document of the given length.
// Nodes are sorted by From; they must not overlap.
func NewFlat(length int, nodes []Node) *Flat {
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].From < sorted[j].From
	})
	return &Flat{length: length, nodes: sorted}
}

// Nodes returns the classified nodes in document order.
func (f *Flat) Nodes() []Node {
	return f.nodes
}

// Len returns the length of the classified document.
func (f *Flat) Len() int {
	return f.length
}

// ResolveInner implements Tree.
func (f *Flat) ResolveInner(offset int, bias Bias) Node {
	idx := sort.Search(len(f.nodes), func(i int) bool {
		if bias == BiasLeft {
			return f.nodes[i].To >= offset
		}
		return f.nodes[i].To > offset
	})
	if idx < len(f.nodes) && f.nodes[idx].Contains(offset, bias) {
		return f.nodes[idx]
	}
	return Node{Name: Document, From: 0, To: f.length}
}

// Static is a Tree over an arbitrary, possibly nested, list of nodes.
// It is meant for tests and for hosts that already hold a node list.
type Static struct {
	length int
	nodes  []Node
}

// NewStatic creates a Static tree for a document of the given length.
func NewStatic(length int, nodes ...Node) *Static {
	return &Static{length: length, nodes: nodes}
}

// ResolveInner implements Tree. The shortest containing node wins;
// on equal lengths the later node in the list wins.
func (s *Static) ResolveInner(offset int, bias Bias) Node {
	best := Node{Name: Document, From: 0, To: s.length}
	found := false
	for _, node := range s.nodes {
		if !node.Contains(offset, bias) {
			continue
		}
		if !found || node.Len() <= best.Len() {
			best = node
			found = true
		}
	}
	return best
}
