// Package unionfind implements path-halving Find and union-by-rank Union.
package unionfind

import "fmt"

// New returns a UnionFind of n singleton sets; every element is its own
// representative with rank 0. n <= 0 yields an empty structure.
//
// Complexity: O(n) time and memory.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Len returns the number of elements the structure was created with.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets remaining.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the representative of the set containing x.
// Returns ErrOutOfRange if x is not in [0, Len()).
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.check("Find", x); err != nil {
		return 0, err
	}

	return uf.root(x), nil
}

// Union merges the sets containing x and y.
// It returns false when x and y already share a representative (the edge
// x—y would close a cycle), true when two sets were merged.
// Returns ErrOutOfRange if either index is not in [0, Len()).
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(x, y int) (bool, error) {
	if err := uf.check("Union", x); err != nil {
		return false, err
	}
	if err := uf.check("Union", y); err != nil {
		return false, err
	}

	return uf.link(uf.root(x), uf.root(y)), nil
}

// Connected reports whether x and y belong to the same set.
// Returns ErrOutOfRange if either index is not in [0, Len()).
func (uf *UnionFind) Connected(x, y int) (bool, error) {
	if err := uf.check("Connected", x); err != nil {
		return false, err
	}
	if err := uf.check("Connected", y); err != nil {
		return false, err
	}

	return uf.root(x) == uf.root(y), nil
}

// check validates x against [0, Len()) and wraps ErrOutOfRange with context.
func (uf *UnionFind) check(method string, x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("%s: x=%d not in [0,%d): %w", method, x, len(uf.parent), ErrOutOfRange)
	}

	return nil
}

// root walks from x to its representative with path halving.
// x must already be validated.
func (uf *UnionFind) root(x int) int {
	p := uf.parent[x]
	for x != p {
		// Point x at its grandparent, then step to the old parent.
		gp := uf.parent[p]
		uf.parent[x] = gp
		x, p = p, gp
	}

	return x
}

// link joins two representatives by rank. Returns false if they are equal.
func (uf *UnionFind) link(rx, ry int) bool {
	if rx == ry {
		return false
	}

	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	uf.count--

	return true
}
