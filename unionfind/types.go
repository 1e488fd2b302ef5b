// Package unionfind defines the UnionFind type and its sentinel errors.
package unionfind

import "errors"

// ErrOutOfRange indicates that an element index lies outside [0, Len()).
// Returned (wrapped with the offending index) by Find, Union and Connected.
var ErrOutOfRange = errors.New("unionfind: index out of range")

// UnionFind is a disjoint-set forest over the elements 0..n-1.
//
// Invariants:
//   - parent[x] == x iff x is the representative of its set.
//   - rank[x] is an upper bound on the height of the tree rooted at x and is
//     only consulted for roots; it never decreases.
//   - count equals the number of distinct representatives.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}
