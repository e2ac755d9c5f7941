// White-box tests for the global event queue (component B): ordering by
// time, then kind, then insertion sequence, per the documented tie-break.
package pcst

import "testing"

func TestEventQueue_OrdersByTimeAscending(t *testing.T) {
	eq := newEventQueue(4)
	eq.push(3, edgeEvent, 30)
	eq.push(1, edgeEvent, 10)
	eq.push(2, edgeEvent, 20)

	wantOrder := []int32{10, 20, 30}
	for _, want := range wantOrder {
		ev, ok := eq.pop()
		if !ok {
			t.Fatalf("pop: queue emptied early")
		}
		if ev.cluster != want {
			t.Fatalf("pop order: got cluster %d want %d", ev.cluster, want)
		}
	}
	if _, ok := eq.pop(); ok {
		t.Fatalf("queue should be empty")
	}
}

func TestEventQueue_EdgeEventBeatsDeactivationAtEqualTime(t *testing.T) {
	eq := newEventQueue(2)
	eq.push(5, clusterDeactivationEvent, 1)
	eq.push(5, edgeEvent, 2)

	ev, ok := eq.pop()
	if !ok || ev.kind != edgeEvent || ev.cluster != 2 {
		t.Fatalf("expected edgeEvent(cluster=2) first at equal time, got %+v ok=%v", ev, ok)
	}
	ev, ok = eq.pop()
	if !ok || ev.kind != clusterDeactivationEvent || ev.cluster != 1 {
		t.Fatalf("expected clusterDeactivationEvent(cluster=1) second, got %+v ok=%v", ev, ok)
	}
}

func TestEventQueue_TieBreaksByInsertionOrderWithinSameKindAndTime(t *testing.T) {
	eq := newEventQueue(3)
	eq.push(7, edgeEvent, 100)
	eq.push(7, edgeEvent, 200)
	eq.push(7, edgeEvent, 300)

	wantOrder := []int32{100, 200, 300}
	for _, want := range wantOrder {
		ev, ok := eq.pop()
		if !ok || ev.cluster != want {
			t.Fatalf("insertion-order tie-break: got %+v ok=%v, want cluster %d", ev, ok, want)
		}
	}
}

func TestEventQueue_PopOnEmptyReportsNotOK(t *testing.T) {
	eq := newEventQueue(0)
	if _, ok := eq.pop(); ok {
		t.Fatalf("pop on empty queue should report ok=false")
	}
}
