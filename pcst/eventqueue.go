// The global, strictly time-ordered event queue driving the growth loop:
// a slice-backed heap.Interface implementation plus thin push/pop wrapper
// functions.
package pcst

import "container/heap"

// eventKind distinguishes the two event types the growth driver consumes.
// edgeEvent sorts before clusterDeactivationEvent at equal time; this
// tie-break is part of the documented determinism contract.
type eventKind uint8

const (
	edgeEvent eventKind = iota
	clusterDeactivationEvent
)

// event is one entry in the global queue: "cluster c's current best
// candidate is proposed to fire at time t" (edgeEvent), or "cluster c is
// scheduled to deactivate at time t" (clusterDeactivationEvent). payload
// is always a cluster id; edgeEvent resolves which specific edge-part to
// examine by peeking that cluster's own edgeParts heap at pop time (see
// driver.go), so a cluster never has more than one live proposal of a
// given kind outstanding at once.
type event struct {
	time    float64
	kind    eventKind
	seq     uint64 // insertion order, for deterministic tie-break
	cluster int32
}

// eventQueue is a container/heap min-heap of events ordered by (time,
// kind, seq) ascending, matching the documented determinism rule:
// edge_part_active < cluster_deactivation at equal time, then insertion
// order within a kind.
type eventQueue struct {
	items []event
	nextSeq uint64
}

func newEventQueue(capacity int) *eventQueue {
	eq := &eventQueue{items: make([]event, 0, capacity)}
	heap.Init(eq)

	return eq
}

// push schedules ev.cluster at ev.time/ev.kind, stamping insertion order.
func (eq *eventQueue) push(time float64, kind eventKind, cluster int32) {
	eq.nextSeq++
	heap.Push(eq, event{time: time, kind: kind, seq: eq.nextSeq, cluster: cluster})
}

// pop removes and returns the earliest event, or ok=false if empty.
func (eq *eventQueue) pop() (event, bool) {
	if eq.Len() == 0 {
		return event{}, false
	}

	return heap.Pop(eq).(event), true
}

// Len implements heap.Interface.
func (eq *eventQueue) Len() int { return len(eq.items) }

// Less implements heap.Interface: time, then kind, then insertion order.
func (eq *eventQueue) Less(i, j int) bool {
	a, b := eq.items[i], eq.items[j]
	if a.time != b.time {
		return a.time < b.time
	}
	if a.kind != b.kind {
		return a.kind < b.kind
	}

	return a.seq < b.seq
}

// Swap implements heap.Interface.
func (eq *eventQueue) Swap(i, j int) { eq.items[i], eq.items[j] = eq.items[j], eq.items[i] }

// Push implements heap.Interface; callers should use eq.push instead.
func (eq *eventQueue) Push(x interface{}) { eq.items = append(eq.items, x.(event)) }

// Pop implements heap.Interface; callers should use eq.pop instead.
func (eq *eventQueue) Pop() interface{} {
	old := eq.items
	n := len(old)
	it := old[n-1]
	eq.items = old[:n-1]

	return it
}
