package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/betweenness/builder"
	"github.com/katalvlaran/betweenness/centrality"
)

// ExampleBetweenness scores a five-vertex path: the middle vertex lies on
// the shortest path of four pairs.
func ExampleBetweenness() {
	g := builder.MustBuild(builder.Path(5))
	scores, err := centrality.Betweenness(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(scores)
	// Output:
	// [0 3 4 3 0]
}

// ExampleBetweenness_normalized shows that a star's hub reaches the maximum
// normalised score of 1.
func ExampleBetweenness_normalized() {
	g := builder.MustBuild(builder.Star(6))
	scores, _ := centrality.Betweenness(g, centrality.WithNormalized(true))
	fmt.Println(scores)
	// Output:
	// [1 0 0 0 0 0]
}

// ExampleArgMax picks the most central vertex of a wheel.
func ExampleArgMax() {
	g := builder.MustBuild(builder.Wheel(7))
	scores, _ := centrality.Betweenness(g, centrality.WithWorkers(2))
	v, x := centrality.ArgMax(scores)
	fmt.Printf("vertex %d: %.1f\n", v, x)
	// Output:
	// vertex 0: 6.0
}
