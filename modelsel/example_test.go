package modelsel_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/spatialkit/memgo/mem"
	"github.com/spatialkit/memgo/modelsel"
	"github.com/spatialkit/memgo/spweights"
)

// The response loads heavily on one basis column; forward selection ranks
// that column first and AICc stops the model right there.
func ExampleForward() {
	g, err := spweights.Cycle(6, spweights.RowStandardized)
	if err != nil {
		panic(err)
	}
	full, err := mem.New(g)
	if err != nil {
		panic(err)
	}
	b, err := full.Subset(0, 1, 2, 3)
	if err != nil {
		panic(err)
	}

	u0, _ := full.Vector(0)
	u3, _ := full.Vector(3)
	u4, _ := full.Vector(4)
	y := mat.NewDense(6, 1, nil)
	for i := 0; i < 6; i++ {
		y.Set(i, 0, 2*u3[i]+0.05*u0[i]+0.3*u4[i])
	}

	res, err := modelsel.Forward(b, y)
	if err != nil {
		panic(err)
	}
	fmt.Printf("first=%d best=%d\n", res.Ordering[0], res.Best)
	// Output: first=3 best=1
}
