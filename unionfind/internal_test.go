package unionfind

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInvariants_RootsAndRanks drives random unions and finds, checking after
// each step that roots are exactly the self-parented elements, that ranks never
// decrease, and that count matches the number of roots.
func TestInvariants_RootsAndRanks(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewSource(11))
	uf := New(n)
	prevRank := make([]int, n)

	for step := 0; step < 300; step++ {
		x, y := r.Intn(n), r.Intn(n)
		if step%3 == 0 {
			_, err := uf.Find(x)
			require.NoError(t, err)
		} else {
			_, err := uf.Union(x, y)
			require.NoError(t, err)
		}

		roots := 0
		for i := 0; i < n; i++ {
			if uf.parent[i] == i {
				roots++
			}
			assert.GreaterOrEqual(t, uf.rank[i], prevRank[i], "rank[%d] decreased", i)
			prevRank[i] = uf.rank[i]
		}
		assert.Equal(t, roots, uf.count)
	}
}

// TestUnion_ByRank checks the attachment direction on unequal and equal ranks.
func TestUnion_ByRank(t *testing.T) {
	uf := New(4)

	// Equal ranks: 1 goes under 0 and rank[0] becomes 1.
	require.True(t, uf.link(0, 1))
	assert.Equal(t, 0, uf.parent[1])
	assert.Equal(t, 1, uf.rank[0])

	// rank[2]=0 < rank[0]=1: 2 goes under 0, rank unchanged.
	require.True(t, uf.link(2, 0))
	assert.Equal(t, 0, uf.parent[2])
	assert.Equal(t, 1, uf.rank[0])

	// Same root twice is a no-op.
	assert.False(t, uf.link(0, 0))
}

// TestFind_PathHalving verifies that Find shortens a hand-built chain.
func TestFind_PathHalving(t *testing.T) {
	uf := New(5)
	// Chain 4 -> 3 -> 2 -> 1 -> 0.
	for i := 1; i < 5; i++ {
		uf.parent[i] = i - 1
	}
	uf.count = 1

	root, err := uf.Find(4)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	// 4 now points at its former grandparent 2, and 2 at 0.
	assert.Equal(t, 2, uf.parent[4])
	assert.Equal(t, 0, uf.parent[2])
}
