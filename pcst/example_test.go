// Package pcst_test provides runnable examples demonstrating Solve's public
// surface, verified via "go test -run Example" output matching.
package pcst_test

import (
	"fmt"

	"github.com/prizesteiner/pcst/pcst"
)

// ExampleSolve_star demonstrates an unrooted solve on a star graph: a
// zero-prize center kept purely for connectivity, four profitable leaves.
func ExampleSolve_star() {
	in := pcst.DefaultOptions(
		[]pcst.EdgeEndpoints{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}},
		[]float64{10, 12, 8, 15},
		[]float64{0, 100, 80, 60, 90},
	)
	in.Pruning = pcst.PruneGW

	res, err := pcst.Solve(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("nodes=%v edges=%v\n", res.NodeIDs, res.EdgeIDs)
	// Output: nodes=[0 1 2 3 4] edges=[0 1 2 3]
}

// ExampleSolve_rooted demonstrates pinning a solve to a specific node via
// WithRoot, forcing the result to contain and connect through it.
func ExampleSolve_rooted() {
	in := pcst.DefaultOptions(
		[]pcst.EdgeEndpoints{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}},
		[]float64{5, 8, 12},
		[]float64{50, 10, 15, 40},
		pcst.WithRoot(0),
		pcst.WithPruning(pcst.PruneSimple),
	)

	res, err := pcst.Solve(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("nodes=%v edges=%v\n", res.NodeIDs, res.EdgeIDs)
	// Output: nodes=[0 1 2 3] edges=[0 1 2]
}

// ExampleSolve_invalidInput shows Solve rejecting a negative edge cost with
// a structured error instead of panicking.
func ExampleSolve_invalidInput() {
	in := pcst.DefaultOptions(
		[]pcst.EdgeEndpoints{{U: 0, V: 1}},
		[]float64{-3},
		[]float64{1, 1},
	)

	_, err := pcst.Solve(in)
	fmt.Println(err != nil)
	// Output: true
}
