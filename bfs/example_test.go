package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/searchbench/bfs"
	"github.com/katalvlaran/searchbench/romania"
)

// ExampleBFS finds the route with the fewest roads from Arad to Bucharest.
func ExampleBFS() {
	res, err := bfs.BFS(romania.Graph(), "Arad", "Bucharest")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [Arad Sibiu Fagaras Bucharest] 450
}
