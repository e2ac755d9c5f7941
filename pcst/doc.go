// Package pcst computes an approximate Prize-Collecting Steiner Tree or
// Forest (PCST/PCSF) over an undirected weighted graph with non-negative
// node prizes and non-negative edge costs. The solver maximizes
//
//	Σ prize(v) over selected nodes  −  Σ cost(e) over selected edges
//
// using a Goemans–Williamson style moat-growing primal-dual algorithm,
// followed by one of four pruning strategies (none, simple, gw, strong).
//
// Algorithm sketch:
//
//   - Every node starts as a singleton cluster; clusters with positive
//     prize grow a "moat" (dual variable) at unit rate while active.
//     Zero-prize nodes start inactive and act purely as Steiner
//     connectors.
//   - Edges become "tight" when the combined moat contribution from both
//     endpoints' clusters reaches the edge cost; tight edges are recorded
//     as good edges and trigger a cluster merge.
//   - A cluster deactivates once it has spent its entire prize credit on
//     moat growth; inactive clusters stop growing until absorbed by an
//     active one.
//   - Growth terminates when the event queue drains or the number of
//     active top-level clusters reaches the caller's target.
//   - The growth trace (good edges + merge tree) is pruned into the final
//     selection per Input.Pruning.
//
// Complexity: each growth event costs amortized logarithmic pairing-heap
// work, but every merge also finalizes per-node dual totals and copies the
// node lists of both sides, O(cluster size) per merge and O(n²) in the
// worst case (a long chain). A premature edge candidate is repriced a
// number of times logarithmic in its slack. Pruning sorts the selected
// edges, and gw/strong copy subtree node/edge lists while walking the
// merge tree.
//
//	Component                         Role
//	Pairing heap (additive offset)     mergeable per-cluster candidate queues
//	Global event queue                 time-ordered dispatch of candidate events
//	Cluster store                      union-find + dual bookkeeping
//	Growth driver                      event loop, merges, good-edge trace
//	Pruning engine                     none / simple / gw / strong
//	Result assembly                    sorted, deduplicated node/edge sets
//
// Failure semantics: Solve never panics on invalid input; validation
// errors are returned before any growth-phase allocation happens. Any
// internal invariant violation surfaces as an AlgorithmFailure error
// carrying enough context (n, m, root, target, pruning) to reproduce it,
// rather than being silently swallowed.
//
// Example usage:
//
//	res, err := pcst.Solve(pcst.Input{
//	    Edges:  []pcst.EdgeEndpoints{{U: 0, V: 1}, {U: 1, V: 2}},
//	    Costs:  []float64{5, 8},
//	    Prizes: []float64{50, 10, 15},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.NodeIDs, res.EdgeIDs)
package pcst
