// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over dense, zero-based integer elements.
//
// What & Why
//
//   - What is a disjoint set?
//     A partition of {0,…,n-1} into non-overlapping sets. Each set is identified
//     by one representative element (its root). Two elements are connected iff
//     they share a representative.
//
//   - Why it matters:
//
//   - Kruskal MST: reject an edge iff both endpoints already share a root.
//
//   - Connectivity: count components of an edge set incrementally.
//
// Algorithm
//
//   - Find uses path halving: while walking to the root every visited element
//     is re-pointed at its grandparent. One pass, no recursion, same amortized
//     bound as full path compression.
//
//   - Union attaches the root of lower rank under the root of higher rank. On a
//     tie the second root goes under the first and the first root's rank grows
//     by one. Ranks never decrease.
//
//   - Complexity: O(α(n)) amortized per operation, O(n) memory for the two
//     parallel arrays (parent, rank).
//
// Index discipline
//
//	Every exported method validates its arguments once against [0, Len()) and
//	returns ErrOutOfRange on violation. After validation the walk runs on the
//	trusted internal path, which never re-checks.
//
// A UnionFind is not safe for concurrent use; Find mutates parent pointers.
package unionfind
