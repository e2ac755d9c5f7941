// The pruning engine. PruneSimple's leaf-stripping is a Kahn-style
// degree-peeling queue iterated to a fixpoint.
// PruneGW and PruneStrong are both "maximum weight connected subtree"
// recursions: a merge (or tree edge) survives only if the combined value of
// both sides, net of its cost, is non-negative; otherwise only the
// higher-value side is kept standalone and the weaker side (and the edge
// to it) is dropped. PruneGW replays this over the cluster merge tree in
// its natural post-order (equivalent to reverse chronological order: a
// merge's value cannot be known until both its children's values are);
// PruneStrong reapplies the same test over the GW-pruned result's actual
// tree shape via a rooted DFS per component, which is what makes it more
// aggressive — it revisits decisions GW treated as unconditional (an
// active side absorbing an inactive one) using the real topology instead of
// merge chronology.
package pcst

import "sort"

// pruneEpsilon absorbs floating point drift when comparing a subtree's net
// value (or a leaf's prize) against an edge's cost.
const pruneEpsilon = 1e-9

// neighbor is one adjacency entry used by the degree-peeling and DFS passes
// below: the edge id and the node at its other end.
type neighbor struct {
	edge  int32
	other uint32
}

// prune dispatches to the requested strategy, returning the selected good
// edge ids (not yet deduplicated against node membership; see result.go).
func prune(mode PruningMode, cs *clusterStore, in Input, n int, goodEdges []int32) ([]int32, error) {
	switch mode {
	case PruneNone:
		return pruneNone(goodEdges), nil
	case PruneSimple:
		return pruneSimple(goodEdges, in, n), nil
	case PruneGW:
		return pruneGW(cs, in, n), nil
	case PruneStrong:
		return pruneStrong(cs, in, n), nil
	default:
		var root any
		if in.Root != nil {
			root = *in.Root
		}
		return nil, newAlgorithmFailure("unknown pruning mode", map[string]any{
			"n": n, "m": len(in.Edges), "root": root, "target": in.TargetNumActiveClusters, "pruning": int(mode),
		})
	}
}

// pruneNone returns every good edge untouched; useful for benchmarking
// the raw growth phase.
func pruneNone(goodEdges []int32) []int32 {
	out := make([]int32, len(goodEdges))
	copy(out, goodEdges)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// pruneSimple iteratively strips a leaf edge whenever the leaf's own prize
// is below the edge's cost, repeating until no such leaf remains. The root
// (if any) is never stripped.
func pruneSimple(goodEdges []int32, in Input, n int) []int32 {
	kept := make(map[int32]bool, len(goodEdges))
	for _, e := range goodEdges {
		kept[e] = true
	}

	adj := make([][]neighbor, n)
	degree := make([]int, n)
	for e := range kept {
		ep := in.Edges[e]
		adj[ep.U] = append(adj[ep.U], neighbor{edge: e, other: ep.V})
		adj[ep.V] = append(adj[ep.V], neighbor{edge: e, other: ep.U})
		degree[ep.U]++
		degree[ep.V]++
	}

	var rootNode int64 = -1
	if in.Root != nil {
		rootNode = int64(*in.Root)
	}

	queue := make([]int, 0, n)
	queued := make([]bool, n)
	enqueue := func(v int) {
		if int64(v) == rootNode || queued[v] || degree[v] != 1 {
			return
		}
		queue = append(queue, v)
		queued[v] = true
	}
	for v := 0; v < n; v++ {
		enqueue(v)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false
		if degree[v] != 1 {
			continue // stale: degree changed since this node was queued
		}

		var live neighbor
		found := false
		for _, nb := range adj[v] {
			if kept[nb.edge] {
				live = nb
				found = true
				break
			}
		}
		if !found {
			continue
		}

		if in.Prizes[v] < in.Costs[live.edge]-pruneEpsilon {
			delete(kept, live.edge)
			degree[v]--
			degree[live.other]--
			enqueue(int(live.other))
		}
	}

	out := make([]int32, 0, len(kept))
	for e := range kept {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// pruneGW walks every final top-level cluster's merge tree and collects the
// edges gwValue decided to keep.
func pruneGW(cs *clusterStore, in Input, n int) []int32 {
	return sortedKeys(gwSelectedEdges(cs, in, n))
}

// gwSelectedEdges computes the GW-kept edge set as a set (used directly by
// PruneGW, and reused internally by PruneStrong as its first pass).
func gwSelectedEdges(cs *clusterStore, in Input, n int) map[int32]bool {
	selected := make(map[int32]bool)
	seen := make(map[int32]bool)
	for v := 0; v < n; v++ {
		top := cs.find(int32(v))
		if seen[top] {
			continue
		}
		seen[top] = true
		_, _, edges := gwValue(cs, top, in.Costs, in.Prizes)
		for _, e := range edges {
			selected[e] = true
		}
	}

	return selected
}

// gwValue recursively computes the net prize value retained by cluster id's
// merge subtree, plus the nodes/edges that survive. A leaf (an original
// singleton, never merged) is worth its own prize. An internal merge node
// is worth the combined value of both children minus the connecting edge's
// cost, PROVIDED that combined value is non-negative; otherwise the weaker
// side (and the connecting edge) is dropped, and only the stronger side's
// own already-pruned contents propagate upward. The test is on the combined
// value only: whether a side was active or inactive at the merge is not
// consulted, and an absorbed side whose own value is below the edge cost is
// kept whenever the other side makes the combined value non-negative.
func gwValue(cs *clusterStore, id int32, costs, prizes []float64) (value float64, nodes, edges []int32) {
	c := cs.clusters[id]
	if !c.hasMerge {
		return prizes[id], []int32{id}, nil
	}

	lv, ln, le := gwValue(cs, c.mergedFromLeft, costs, prizes)
	rv, rn, re := gwValue(cs, c.mergedFromRight, costs, prizes)
	cost := costs[c.mergeEdge]
	combined := lv + rv - cost

	if combined >= -pruneEpsilon {
		nodes = make([]int32, 0, len(ln)+len(rn))
		nodes = append(append(nodes, ln...), rn...)
		edges = make([]int32, 0, len(le)+len(re)+1)
		edges = append(append(edges, le...), re...)
		edges = append(edges, c.mergeEdge)

		return combined, nodes, edges
	}
	if lv >= rv {
		return lv, ln, le
	}

	return rv, rn, re
}

// pruneStrong applies PruneGW's subtree test first, then re-examines the
// result via a rooted DFS per component (rooted at the real root when one
// is set, otherwise at each component's smallest node id), cascading: a
// child subtree survives only if its own value covers the edge that
// attaches it to its parent, so dropping one child can turn its sibling's
// parent into a leaf that then fails its own test on the next level up.
func pruneStrong(cs *clusterStore, in Input, n int) []int32 {
	gwEdges := sortedKeys(gwSelectedEdges(cs, in, n))

	adj := make([][]neighbor, n)
	for _, e := range gwEdges {
		ep := in.Edges[e]
		adj[ep.U] = append(adj[ep.U], neighbor{edge: e, other: ep.V})
		adj[ep.V] = append(adj[ep.V], neighbor{edge: e, other: ep.U})
	}

	visited := make([]bool, n)
	kept := make(map[int32]bool)

	var dfs func(v uint32, viaEdge int32) (float64, []int32)
	dfs = func(v uint32, viaEdge int32) (float64, []int32) {
		visited[v] = true
		value := in.Prizes[v]
		var edges []int32
		for _, nb := range adj[v] {
			if nb.edge == viaEdge || visited[nb.other] {
				continue
			}
			childValue, childEdges := dfs(nb.other, nb.edge)
			if childValue-in.Costs[nb.edge] >= -pruneEpsilon {
				value += childValue - in.Costs[nb.edge]
				edges = append(append(edges, childEdges...), nb.edge)
			}
		}

		return value, edges
	}
	keep := func(edges []int32) {
		for _, e := range edges {
			kept[e] = true
		}
	}

	if in.Root != nil && int(*in.Root) < n {
		_, edges := dfs(*in.Root, -1)
		keep(edges)
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			_, edges := dfs(uint32(v), -1)
			keep(edges)
		}
	}

	return sortedKeys(kept)
}

// sortedKeys returns the keys of an edge-id set, ascending.
func sortedKeys(set map[int32]bool) []int32 {
	out := make([]int32, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
