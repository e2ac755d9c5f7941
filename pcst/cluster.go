// The cluster store: union-find over clusters carrying dual-growth state,
// plus the per-edge handle index into cluster heaps. Cross-component
// references are indices into parallel arrays, never long-lived pointers.
package pcst

// cluster is one node of the merge forest: either an original singleton
// (id < n) or a cluster born from a merge (id >= n). Clusters are
// immutable once merged; a merged id never names a new cluster.
type cluster struct {
	active          bool
	neverDeactivate bool // true only for the cluster currently containing the root
	// activation is the global time this cluster was born. It doubles as
	// the cluster's heap frame: edgeParts values are stored relative to it,
	// so a melding cluster re-bases an absorbed heap with one O(1) AddToAll
	// instead of touching every element.
	activation   float64
	prizeAtBirth float64
	// frozen* are valid only once active == false. frozenMoat is the
	// cluster's OWN accrual only; parents' moats live in clusterStore.dual
	// once finalized.
	frozenPrizeRemaining float64
	frozenMoat           float64

	// edgeParts holds candidate outgoing edge-parts keyed by a lower bound
	// of the edge's tight time, relative to activation. Bounds are safe to
	// act on optimistically: the growth loop re-verifies every candidate
	// against the authoritative moat bookkeeping at pop time.
	edgeParts *pairingHeap

	// nodes lists every original node contained in this cluster.
	nodes []int32

	// set only for clusters born from a merge (id >= n).
	mergedFromLeft, mergedFromRight int32
	mergeEdge                       int32
	hasMerge                        bool
}

// moatAt returns the cluster's own dual value at time t: it grows at unit
// rate while active (from its birth/activation instant) and is frozen
// once inactive. Moats of the cluster's merged-away ancestors are NOT
// included; see clusterStore.contribution.
func (c *cluster) moatAt(t float64) float64 {
	if !c.active {
		return c.frozenMoat
	}

	return t - c.activation
}

// prizeRemainingAt returns the cluster's unspent prize credit at time t.
func (c *cluster) prizeRemainingAt(t float64) float64 {
	if !c.active {
		return c.frozenPrizeRemaining
	}

	return c.prizeAtBirth - (t - c.activation)
}

// clusterStore owns every cluster created during a solve, the union-find
// over cluster ids, the per-node finalized dual totals, and the per-edge
// handle index. Clusters are appended, never removed; find() resolves a
// node's current top-level cluster with path compression.
type clusterStore struct {
	arena    *heapArena
	parent   []int32 // union-find parent; parent[id] == id means top-level
	clusters []*cluster

	// dual[v] is the summed moat of every cluster that contained node v
	// and has since been merged away. A node's full dual contribution to
	// an incident edge is dual[v] plus its current top cluster's own moat.
	dual []float64

	// edge-event index: the heap handles for each edge's two edge-parts,
	// so a merge or reprice can locate either part in constant time.
	edgeLeftHandle, edgeRightHandle []heapHandle
}

// newClusterStore builds n singleton clusters for nodes with the given
// prizes, and m edge-part pairs for the given edges/costs. Zero-prize
// singletons start inactive (Steiner nodes) and others start active; the
// root's cluster, if rootIdx is non-nil, starts active whatever its prize
// and never deactivates (infinite credit). Initial event scheduling is the caller's job (see
// driver.go's newRunner), since it belongs to the growth loop, not the
// data structure.
func newClusterStore(prizes []float64, edges []EdgeEndpoints, costs []float64, rootIdx *uint32) *clusterStore {
	n := len(prizes)
	m := len(edges)
	arena := newHeapArena(2 * m)
	cs := &clusterStore{
		arena:           arena,
		parent:          make([]int32, n, n+n),
		clusters:        make([]*cluster, n, n+n),
		dual:            make([]float64, n),
		edgeLeftHandle:  make([]heapHandle, m),
		edgeRightHandle: make([]heapHandle, m),
	}

	for v := 0; v < n; v++ {
		cs.parent[v] = int32(v)
		isRoot := rootIdx != nil && int(*rootIdx) == v
		c := &cluster{
			active:          prizes[v] > 0 || isRoot,
			neverDeactivate: isRoot,
			activation:      0,
			prizeAtBirth:    prizes[v],
			edgeParts:       newPairingHeap(arena),
			nodes:           []int32{int32(v)},
		}
		if !c.active {
			c.frozenPrizeRemaining = prizes[v]
			c.frozenMoat = 0
		}
		cs.clusters[v] = c
	}

	for e := 0; e < m; e++ {
		half := costs[e] / 2
		u, v := int(edges[e].U), int(edges[e].V)
		cs.edgeLeftHandle[e] = cs.clusters[u].edgeParts.Insert(half, int32(e))
		cs.edgeRightHandle[e] = cs.clusters[v].edgeParts.Insert(half, int32(e))
	}

	return cs
}

// contribution returns node v's full dual contribution to an incident
// edge at time t: every finalized ancestor moat plus the live moat of v's
// current top-level cluster.
func (cs *clusterStore) contribution(v uint32, top int32, t float64) float64 {
	return cs.dual[v] + cs.clusters[top].moatAt(t)
}

// dropEdgeParts removes edge e's still-queued edge-parts from cluster id's
// heap once the edge has become internal, located in constant time through
// the handle index. Parts already consumed by the growth loop are skipped.
func (cs *clusterStore) dropEdgeParts(id, e int32) {
	c := cs.clusters[id]
	for _, hnd := range [2]heapHandle{cs.edgeLeftHandle[e], cs.edgeRightHandle[e]} {
		if cs.arena.node(hnd).alive {
			c.edgeParts.Remove(hnd)
		}
	}
}

// retargetEdgeHandle repoints edge e's handle index entry from old to
// fresh after a reprice.
func (cs *clusterStore) retargetEdgeHandle(e int32, old, fresh heapHandle) {
	if cs.edgeLeftHandle[e] == old {
		cs.edgeLeftHandle[e] = fresh
		return
	}
	cs.edgeRightHandle[e] = fresh
}

// find returns the current top-level cluster id containing id, with path
// compression.
func (cs *clusterStore) find(id int32) int32 {
	root := id
	for cs.parent[root] != root {
		root = cs.parent[root]
	}
	for cs.parent[id] != root {
		next := cs.parent[id]
		cs.parent[id] = root
		id = next
	}

	return root
}

// newCluster appends a fresh cluster/union-find slot and returns its id.
func (cs *clusterStore) newCluster(c *cluster) int32 {
	id := int32(len(cs.clusters))
	cs.clusters = append(cs.clusters, c)
	cs.parent = append(cs.parent, id)

	return id
}

// merge unions a and b (both must currently be top-level) along edgeID at
// time t, creating and returning the surviving cluster's id. Both sides'
// own moats are finalized into the per-node dual totals, so the new
// cluster's moat starts from zero. The three cases (active-active,
// active-inactive, inactive-inactive) operate directly on the explicit
// moat/prize bookkeeping above rather than replaying the heap's offset
// semantics for dual values: the heap is used only to drive event
// scheduling, verified authoritatively at pop time (see driver.go).
func (cs *clusterStore) merge(a, b int32, edgeID int32, t float64) int32 {
	ca, cb := cs.clusters[a], cs.clusters[b]

	for _, v := range ca.nodes {
		cs.dual[v] += ca.moatAt(t)
	}
	for _, v := range cb.nodes {
		cs.dual[v] += cb.moatAt(t)
	}

	c3 := &cluster{
		edgeParts:       newPairingHeap(cs.arena),
		nodes:           append(append(make([]int32, 0, len(ca.nodes)+len(cb.nodes)), ca.nodes...), cb.nodes...),
		mergedFromLeft:  a,
		mergedFromRight: b,
		mergeEdge:       edgeID,
		hasMerge:        true,
	}

	switch {
	case ca.active && cb.active:
		c3.active = true
		c3.neverDeactivate = ca.neverDeactivate || cb.neverDeactivate
		c3.prizeAtBirth = ca.prizeRemainingAt(t) + cb.prizeRemainingAt(t)

	case ca.active != cb.active:
		activeSide, inactiveSide := ca, cb
		if cb.active {
			activeSide, inactiveSide = cb, ca
		}
		c3.active = true
		c3.neverDeactivate = activeSide.neverDeactivate || inactiveSide.neverDeactivate
		c3.prizeAtBirth = activeSide.prizeRemainingAt(t) + inactiveSide.frozenPrizeRemaining

	default: // both inactive
		c3.active = false
		c3.frozenPrizeRemaining = ca.frozenPrizeRemaining + cb.frozenPrizeRemaining
		c3.frozenMoat = 0
	}

	// Re-base both heaps from their owners' frames into c3's, then meld.
	// A deactivated side's bounds carry over unchanged in absolute terms: a
	// lower bound never expires, it only gets less tight.
	c3.activation = t
	ca.edgeParts.AddToAll(ca.activation - t)
	cb.edgeParts.AddToAll(cb.activation - t)
	c3.edgeParts.Meld(ca.edgeParts)
	c3.edgeParts.Meld(cb.edgeParts)

	id := cs.newCluster(c3)
	cs.parent[a] = id
	cs.parent[b] = id

	return id
}
