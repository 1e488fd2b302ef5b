package mst

import "fmt"

// DynamicGraph is the opt-in inferred node-count layer over Graph.
// Its id space grows to cover every endpoint named by AddEdge, and isolated
// nodes can be reserved explicitly with AddNode/AddNodes. A node that is
// neither reserved nor named by an edge below the highest id does not exist:
// degree-zero nodes above the largest endpoint silently vanish unless reserved.
//
// Freeze it with Graph before computing an MST.
type DynamicGraph struct {
	numNodes int
	edges    []Edge
}

// NewDynamicGraph returns an empty DynamicGraph with no nodes.
func NewDynamicGraph() *DynamicGraph {
	return &DynamicGraph{}
}

// AddNode reserves one new node and returns its id.
func (d *DynamicGraph) AddNode() Node {
	return d.AddNodes(1)
}

// AddNodes reserves k consecutive new nodes and returns the first id.
// k <= 0 reserves nothing and returns the next free id.
func (d *DynamicGraph) AddNodes(k int) Node {
	first := Node(d.numNodes)
	if k > 0 {
		d.numNodes += k
	}

	return first
}

// AddEdge appends u—v with weight w and grows the id space to include both
// endpoints. Negative ids return ErrNodeOutOfRange.
func (d *DynamicGraph) AddEdge(u, v Node, w int64) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge: u=%d v=%d: negative id: %w", u, v, ErrNodeOutOfRange)
	}
	if hi := int(max(u, v)) + 1; hi > d.numNodes {
		d.numNodes = hi
	}
	d.edges = append(d.edges, Edge{U: u, V: v, Weight: w})

	return nil
}

// NumNodes returns the current inferred node count.
func (d *DynamicGraph) NumNodes() int {
	return d.numNodes
}

// NumEdges returns the number of edges added so far.
func (d *DynamicGraph) NumEdges() int {
	return len(d.edges)
}

// Graph freezes the current state into an explicit node-count Graph.
// The edge slice is copied; later changes to d do not affect the result.
func (d *DynamicGraph) Graph(opts ...Option) *Graph {
	g := NewGraph(d.numNodes, opts...)
	g.edges = make([]Edge, len(d.edges))
	copy(g.edges, d.edges)

	return g
}
