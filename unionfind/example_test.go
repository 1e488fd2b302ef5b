package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/lvmst/unionfind"
)

// ExampleUnionFind_Union shows cycle detection on three elements.
func ExampleUnionFind_Union() {
	uf := unionfind.New(3)
	a, _ := uf.Union(0, 1)
	b, _ := uf.Union(1, 2)
	c, _ := uf.Union(0, 2) // 0 and 2 are already connected through 1
	fmt.Println(a, b, c, uf.Count())
	// Output: true true false 1
}

func ExampleUnionFind_Find_outOfRange() {
	uf := unionfind.New(2)
	_, err := uf.Find(5)
	fmt.Println(err)
	// Output: Find: x=5 not in [0,2): unionfind: index out of range
}
