package mem_test

import (
	"fmt"

	"github.com/spatialkit/memgo/mem"
	"github.com/spatialkit/memgo/spweights"
)

// A six-node ring keeps every non-constant eigenvector: five orthonormal
// spatial patterns.
func ExampleNew() {
	g, err := spweights.Cycle(6, spweights.RowStandardized)
	if err != nil {
		panic(err)
	}
	b, err := mem.New(g)
	if err != nil {
		panic(err)
	}
	fmt.Println(b.NodeCount(), b.Len(), b.Orthonormal())
	// Output: 6 5 true
}

func ExampleBasis_Subset() {
	g, err := spweights.Cycle(6, spweights.RowStandardized)
	if err != nil {
		panic(err)
	}
	b, err := mem.New(g)
	if err != nil {
		panic(err)
	}
	sub, err := b.Subset(0, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(sub.Len(), sub.Orthonormal())
	// Output: 2 true
}
