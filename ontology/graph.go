package ontology

// Graph is the class hierarchy as an arena of nodes plus index-based edges.
// Edges point child to parent, the dependency direction of rdfs:subClassOf;
// a node may have several parents. The builder does not reject cycles - the
// reasoner detects them lazily during traversal.
//
// Index-based adjacency keeps the structure free of object reference cycles
// and keeps traversal cache-friendly.
type Graph struct {
	nodes   []NodeID
	parents [][]int
	index   map[NodeID]int
}

func newGraph() *Graph {
	return &Graph{index: make(map[NodeID]int)}
}

// addNode interns the IRI and returns its arena index.
func (g *Graph) addNode(id NodeID) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.parents = append(g.parents, nil)
	g.index[id] = i
	return i
}

// addEdge records child -> parent, creating either endpoint as needed.
// Duplicate edges are dropped.
func (g *Graph) addEdge(child, parent NodeID) {
	ci := g.addNode(child)
	pi := g.addNode(parent)
	for _, existing := range g.parents[ci] {
		if existing == pi {
			return
		}
	}
	g.parents[ci] = append(g.parents[ci], pi)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// NodeAt returns the IRI at an arena index.
func (g *Graph) NodeAt(i int) NodeID { return g.nodes[i] }

// IndexOf returns the arena index of an IRI.
func (g *Graph) IndexOf(id NodeID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// ParentIndexes returns the parent arena indexes of the node at i. The
// returned slice is owned by the graph and must not be mutated.
func (g *Graph) ParentIndexes(i int) []int { return g.parents[i] }

// ParentsOf returns the direct parent IRIs of id, in declaration order.
func (g *Graph) ParentsOf(id NodeID) ([]NodeID, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	out := make([]NodeID, 0, len(g.parents[i]))
	for _, pi := range g.parents[i] {
		out = append(out, g.nodes[pi])
	}
	return out, true
}

// ChildrenOf returns every node with an edge pointing at id. This is a
// linear scan; the graph keeps no reverse index.
func (g *Graph) ChildrenOf(id NodeID) ([]NodeID, bool) {
	target, ok := g.index[id]
	if !ok {
		return nil, false
	}
	var out []NodeID
	for ci, ps := range g.parents {
		for _, pi := range ps {
			if pi == target {
				out = append(out, g.nodes[ci])
				break
			}
		}
	}
	return out, true
}
