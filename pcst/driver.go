// The growth driver: builds the initial singleton clusters and their
// events, then runs the moat-growing merge loop, popping one event at a
// time until the active-cluster target is reached or the queue drains.
//
// The global event queue's entries are treated as scheduling hints, not
// ground truth: every pop is re-verified against the clusters' own
// moat/prize bookkeeping (cluster.go's moatAt/prizeRemainingAt) before
// being acted on. A hint that turns out to be premature (because some
// other cluster deactivated since the hint was computed) is corrected and
// requeued instead of trusted blindly. This keeps the pairing heap doing
// real scheduling work without requiring the heap's O(1) AddToAll shifts
// to be exact predictors of merge order, a classic source of
// off-by-epsilon bugs.
package pcst

import "fmt"

// tightEpsilon absorbs floating point drift when comparing an edge's
// accumulated moat sum against its cost.
const tightEpsilon = 1e-9

// runner owns one solve's mutable growth state: the cluster store, the
// global event queue, and the trace of edges selected as the moats grow.
type runner struct {
	cs          *clusterStore
	eq          *eventQueue
	in          Input
	n           int
	m           int
	t           float64
	target      int
	activeCount int
	goodEdges   []int32
}

// newRunner builds the initial singleton clusters, the edge-part heaps,
// and schedules every singleton's first events.
func newRunner(in Input, n, m int) *runner {
	cs := newClusterStore(in.Prizes, in.Edges, in.Costs, in.Root)
	r := &runner{
		cs:     cs,
		eq:     newEventQueue(n + m),
		in:     in,
		n:      n,
		m:      m,
		target: int(in.TargetNumActiveClusters),
	}

	for v := 0; v < n; v++ {
		if cs.clusters[v].active {
			r.activeCount++
		}
		r.scheduleCluster(int32(v))
	}

	return r
}

// run drains the event queue until either it empties or the number of
// active top-level clusters reaches the target. It returns the final set
// of good edges (the raw growth trace, before pruning).
func (r *runner) run() []int32 {
	r.log(1, fmt.Sprintf("growth start: n=%d m=%d target=%d active=%d", r.n, r.m, r.target, r.activeCount))

	for r.activeCount != r.target {
		ev, ok := r.eq.pop()
		if !ok {
			break
		}
		// A queued time can lag the global clock when it came from a stale
		// heap estimate; clamping keeps processed times non-decreasing, and
		// every edge decision is re-verified against the clamped time anyway.
		if ev.time < r.t {
			ev.time = r.t
		} else {
			r.t = ev.time
		}
		r.log(2, fmt.Sprintf("pop t=%.6f kind=%d cluster=%d", ev.time, ev.kind, ev.cluster))
		r.handle(ev)
	}

	r.log(1, fmt.Sprintf("growth done: good edges=%d active=%d", len(r.goodEdges), r.activeCount))

	return r.goodEdges
}

// handle dispatches one popped event, discarding it outright if the
// cluster it names is no longer top-level (it was absorbed by a merge
// scheduled after this event was queued).
func (r *runner) handle(ev event) {
	top := r.cs.find(ev.cluster)
	if top != ev.cluster {
		return
	}
	c := r.cs.clusters[top]

	switch ev.kind {
	case clusterDeactivationEvent:
		r.handleDeactivation(top, c, ev.time)
	case edgeEvent:
		r.handleEdgeEvent(top, c, ev.time)
	}
}

// handleDeactivation freezes an active cluster's moat and prize at t. A
// cluster already inactive (reached some other way, or already flagged
// never to deactivate) is left untouched; this can happen only if a stale
// duplicate somehow reached the queue, which scheduleCluster's one-outstanding
// invariant otherwise prevents.
func (r *runner) handleDeactivation(id int32, c *cluster, t float64) {
	if !c.active || c.neverDeactivate {
		return
	}

	c.frozenMoat = t - c.activation
	c.frozenPrizeRemaining = 0
	c.active = false
	r.activeCount--

	r.log(1, fmt.Sprintf("cluster %d deactivated at t=%.6f", id, t))
}

// handleEdgeEvent examines cluster id's current cheapest outgoing edge
// candidate, discarding internal edges, committing truly tight edges as
// merges, and correcting/requeuing candidates that looked tight only
// because the heap's lazy offset hadn't caught up with a growth-rate
// change elsewhere.
func (r *runner) handleEdgeEvent(id int32, c *cluster, t float64) {
	for {
		if c.edgeParts.Empty() {
			return
		}
		_, edgeID, _ := c.edgeParts.GetMin()
		ep := r.in.Edges[edgeID]
		pu, pv := r.cs.find(int32(ep.U)), r.cs.find(int32(ep.V))

		if pu == pv {
			c.edgeParts.ExtractMin()
			continue
		}

		cu, cv := r.cs.clusters[pu], r.cs.clusters[pv]
		slack := r.in.Costs[edgeID] - r.cs.contribution(ep.U, pu, t) - r.cs.contribution(ep.V, pv, t)

		if slack <= tightEpsilon {
			c.edgeParts.ExtractMin()
			r.commitMerge(pu, pv, edgeID, t)
			return
		}

		if !cu.active && !cv.active {
			// Both sides frozen with slack remaining: this edge can never
			// become tight on its own. It may still merge later, but only
			// as a byproduct of one side's cluster being absorbed into a
			// cluster that reaches the other side through a different edge.
			c.edgeParts.ExtractMin()
			continue
		}

		// Slack is consumed at no more than one unit per active side, so
		// t+slack/2 is a fresh lower bound on the tight time no matter how
		// the two sides' activity changes from here.
		corrected := t + slack/2
		old := c.edgeParts.minHandle()
		fresh := c.edgeParts.Reprice(old, corrected-c.activation)
		r.cs.retargetEdgeHandle(edgeID, old, fresh)
		if val, _, ok := c.edgeParts.GetMin(); ok {
			r.eq.push(val+c.activation, edgeEvent, id)
		}

		return
	}
}

// commitMerge unions pu and pv along edgeID at time t, records the edge
// as good, updates the active-cluster count, and schedules the surviving
// cluster's next events.
func (r *runner) commitMerge(pu, pv int32, edgeID int32, t float64) {
	bothActive := r.cs.clusters[pu].active && r.cs.clusters[pv].active

	newID := r.cs.merge(pu, pv, edgeID, t)
	r.cs.dropEdgeParts(newID, edgeID)
	r.goodEdges = append(r.goodEdges, edgeID)
	if bothActive {
		r.activeCount--
	}

	r.log(1, fmt.Sprintf("merge edge=%d clusters=(%d,%d)->%d at t=%.6f", edgeID, pu, pv, newID, t))

	r.scheduleCluster(newID)
}

// scheduleCluster pushes at most one deactivation event and one edge
// event for the named cluster, matching the invariant that a cluster
// never has more than one outstanding proposal of each kind.
func (r *runner) scheduleCluster(id int32) {
	c := r.cs.clusters[id]
	if c.active && !c.neverDeactivate {
		r.eq.push(c.activation+c.prizeAtBirth, clusterDeactivationEvent, id)
	}
	if val, _, ok := c.edgeParts.GetMin(); ok {
		r.eq.push(val+c.activation, edgeEvent, id)
	}
}

// log forwards msg to in.LogSink if level is within in.Verbosity.
func (r *runner) log(level uint8, msg string) {
	if r.in.LogSink == nil || r.in.Verbosity < level {
		return
	}
	r.in.LogSink(msg)
}
