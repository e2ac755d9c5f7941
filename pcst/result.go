// Result assembly: assembleResult produces deterministic, deduplicated,
// ascending-sorted node and edge id slices from a pruning strategy's
// selected edges.
package pcst

import "sort"

// assembleResult turns a pruning strategy's selected edges into the final
// Result: every edge endpoint, plus (unrooted only) any node with no
// incident edges anywhere in the input graph whose prize alone beats the
// empty set — a true graph-theoretic isolate is never subject to the
// edge-based selection machinery, so it is included directly. Rooted
// solves are additionally restricted to the root's own connected
// component and always include the root itself.
func assembleResult(selectedEdges []int32, in Input, n int) Result {
	nodes := nodesWithDegreeZeroPrize(in, n)
	for _, e := range selectedEdges {
		ep := in.Edges[e]
		nodes[ep.U] = true
		nodes[ep.V] = true
	}
	edges := selectedEdges

	if in.Root != nil {
		edges, nodes = restrictToRootComponent(selectedEdges, in, *in.Root)
	}

	return Result{
		NodeIDs: sortedNodeIDs(nodes),
		EdgeIDs: sortedEdgeIDs(edges),
	}
}

// nodesWithDegreeZeroPrize returns the set of nodes that have no incident
// edge anywhere in the input (not just the selection) and carry positive
// prize: a node the edge-based machinery could never have reached one way
// or another, so its inclusion is a standalone, zero-cost decision.
func nodesWithDegreeZeroPrize(in Input, n int) map[uint32]bool {
	degree := make([]int, n)
	for _, e := range in.Edges {
		degree[e.U]++
		degree[e.V]++
	}

	nodes := make(map[uint32]bool)
	for v := 0; v < n; v++ {
		if degree[v] == 0 && in.Prizes[v] > 0 {
			nodes[uint32(v)] = true
		}
	}

	return nodes
}

// restrictToRootComponent keeps only the edges/nodes reachable from root
// through selectedEdges, and always includes root even if it ended up
// isolated.
func restrictToRootComponent(selectedEdges []int32, in Input, root uint32) ([]int32, map[uint32]bool) {
	adj := make(map[uint32][]neighbor)
	for _, e := range selectedEdges {
		ep := in.Edges[e]
		adj[ep.U] = append(adj[ep.U], neighbor{edge: e, other: ep.V})
		adj[ep.V] = append(adj[ep.V], neighbor{edge: e, other: ep.U})
	}

	visited := map[uint32]bool{root: true}
	keepEdges := make(map[int32]bool)
	queue := []uint32{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nb := range adj[v] {
			keepEdges[nb.edge] = true
			if !visited[nb.other] {
				visited[nb.other] = true
				queue = append(queue, nb.other)
			}
		}
	}

	return sortedKeys(keepEdges), visited
}

func sortedNodeIDs(nodes map[uint32]bool) []uint32 {
	out := make([]uint32, 0, len(nodes))
	for v := range nodes {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortedEdgeIDs(edges []int32) []uint32 {
	seen := make(map[int32]bool, len(edges))
	out := make([]uint32, 0, len(edges))
	for _, e := range edges {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, uint32(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
