package mst

import "fmt"

// Graph is a weighted undirected multigraph over the node ids [0, NumNodes()).
// Parallel edges and self-loops are accepted as input.
type Graph struct {
	numNodes int
	edges    []Edge
	cfg      graphConfig
}

// NewGraph returns an empty Graph over numNodes nodes. A negative count is
// treated as 0.
//
// Complexity: O(1).
func NewGraph(numNodes int, opts ...Option) *Graph {
	if numNodes < 0 {
		numNodes = 0
	}

	return &Graph{
		numNodes: numNodes,
		cfg:      newGraphConfig(opts...),
	}
}

// NumNodes returns the declared node count.
func (g *Graph) NumNodes() int {
	return g.numNodes
}

// NumEdges returns the number of stored edges, loops and duplicates included.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// AddEdge appends the undirected edge u—v with weight w.
// Returns ErrNodeOutOfRange if either endpoint is outside [0, NumNodes());
// the graph is left unchanged in that case.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Node, w int64) error {
	if err := g.checkNode("AddEdge", u); err != nil {
		return err
	}
	if err := g.checkNode("AddEdge", v); err != nil {
		return err
	}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})

	return nil
}

// Edges returns a copy of the stored edges in their current order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// checkNode validates x against [0, NumNodes()).
func (g *Graph) checkNode(method string, x Node) error {
	if x < 0 || int(x) >= g.numNodes {
		return fmt.Errorf("%s: node=%d not in [0,%d): %w", method, x, g.numNodes, ErrNodeOutOfRange)
	}

	return nil
}

// Clone returns a deep copy of g with the same node count, edge order and
// options.
func (g *Graph) Clone() *Graph {
	return &Graph{
		numNodes: g.numNodes,
		edges:    g.Edges(),
		cfg:      g.cfg,
	}
}
