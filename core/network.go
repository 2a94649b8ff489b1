package core

// Network is an immutable capacitated directed graph. Construct one through
// Builder.Build; there are no mutation operations. A Network may be shared
// freely across goroutines and concurrent flow computations.
type Network struct {
	nodes map[string]Node
	edges map[Arc]float64

	order   []string            // all node IDs, ascending
	out     map[string][]string // forward neighbors, ascending
	sources []string            // source-role IDs, ascending
	sinks   []string            // sink-role IDs, ascending
}

// Order returns the number of nodes.
func (n *Network) Order() int { return len(n.nodes) }

// Size returns the number of forward edges.
func (n *Network) Size() int { return len(n.edges) }

// HasNode reports whether id is a node of the network.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodes[id]
	return ok
}

// Node returns the node with the given ID and whether it exists.
func (n *Network) Node(id string) (Node, bool) {
	node, ok := n.nodes[id]
	return node, ok
}

// Nodes returns all nodes in ascending ID order.
// The returned slice is freshly allocated; callers may keep it.
func (n *Network) Nodes() []Node {
	nodes := make([]Node, 0, len(n.order))
	for _, id := range n.order {
		nodes = append(nodes, n.nodes[id])
	}

	return nodes
}

// NodeIDs returns all node IDs in ascending order.
func (n *Network) NodeIDs() []string {
	ids := make([]string, len(n.order))
	copy(ids, n.order)

	return ids
}

// Capacity returns the capacity of the forward edge u→v and whether that
// edge exists. Absent edges report (0, false); a Network never stores a
// zero-capacity edge.
func (n *Network) Capacity(u, v string) (float64, bool) {
	c, ok := n.edges[Arc{From: u, To: v}]
	return c, ok
}

// HasEdge reports whether the forward edge u→v exists.
func (n *Network) HasEdge(u, v string) bool {
	_, ok := n.edges[Arc{From: u, To: v}]
	return ok
}

// Edges returns every forward edge ordered by (From, To) ascending.
func (n *Network) Edges() []Edge {
	edges := make([]Edge, 0, len(n.edges))
	for _, u := range n.order {
		for _, v := range n.out[u] {
			edges = append(edges, Edge{From: u, To: v, Capacity: n.edges[Arc{From: u, To: v}]})
		}
	}

	return edges
}

// Out returns the forward neighbors of u in ascending ID order.
// The returned slice is shared; callers must not mutate it.
func (n *Network) Out(u string) []string {
	return n.out[u]
}

// Sources returns the IDs of all source-role nodes, ascending.
func (n *Network) Sources() []string {
	ids := make([]string, len(n.sources))
	copy(ids, n.sources)

	return ids
}

// Sinks returns the IDs of all sink-role nodes, ascending.
func (n *Network) Sinks() []string {
	ids := make([]string, len(n.sinks))
	copy(ids, n.sinks)

	return ids
}
