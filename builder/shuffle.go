package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvmst/mst"
)

// Shuffle applies swaps random transpositions to edges in place, turning a
// sorted edge list into a partly sorted one. A nil rng or fewer than two
// edges leaves the slice unchanged.
//
// Complexity: O(swaps).
func Shuffle(edges []mst.Edge, swaps int, rng *rand.Rand) {
	if rng == nil || len(edges) < 2 {
		return
	}
	for s := 0; s < swaps; s++ {
		i, j := rng.Intn(len(edges)), rng.Intn(len(edges))
		edges[i], edges[j] = edges[j], edges[i]
	}
}
