// White-box tests for the pruning engine (component F): pruneSimple and
// gwValue are exercised directly on hand-built inputs, and every strategy
// end to end through the growth driver on small worked scenarios.
package pcst

import (
	"errors"
	"testing"
)

// ------------------------------------------------------------------------
// 1. pruneSimple: direct leaf-stripping unit test.
// ------------------------------------------------------------------------

func TestPruneSimple_StripsUnprofitableLeaf(t *testing.T) {
	in := Input{
		Edges:  []EdgeEndpoints{{0, 1}},
		Costs:  []float64{10},
		Prizes: []float64{100, 2}, // node 1's prize (2) cannot cover the edge cost (10)
	}
	got := pruneSimple([]int32{0}, in, 2)
	if len(got) != 0 {
		t.Fatalf("pruneSimple: got %v, want empty (leaf should be stripped)", got)
	}
}

func TestPruneSimple_KeepsProfitableLeaf(t *testing.T) {
	in := Input{
		Edges:  []EdgeEndpoints{{0, 1}},
		Costs:  []float64{10},
		Prizes: []float64{100, 50},
	}
	got := pruneSimple([]int32{0}, in, 2)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("pruneSimple: got %v, want [0] (edge should survive)", got)
	}
}

// ------------------------------------------------------------------------
// 2. gwValue: direct unit test of the keep-both vs keep-stronger-side
//    recursion, bypassing the growth driver entirely.
// ------------------------------------------------------------------------

func TestGWValue_DropsWeakerSideWhenCombinedNegative(t *testing.T) {
	// Two singleton leaves, A (prize 5) and B (prize 1), joined by an edge
	// costing 10: combined value 5+1-10 = -4 < 0, so the edge and B are
	// dropped and only A's own value (5) propagates.
	prizes := []float64{5, 1}
	edges := []EdgeEndpoints{{0, 1}}
	costs := []float64{10}
	cs := newClusterStore(prizes, edges, costs, nil)
	mergedID := cs.merge(0, 1, 0, 1.0)

	value, nodes, gwEdges := gwValue(cs, mergedID, costs, prizes)
	if value != 5 {
		t.Fatalf("gwValue: got %v, want 5 (stronger side only)", value)
	}
	if len(nodes) != 1 || nodes[0] != 0 {
		t.Fatalf("gwValue nodes: got %v, want [0]", nodes)
	}
	if len(gwEdges) != 0 {
		t.Fatalf("gwValue edges: got %v, want empty (edge dropped)", gwEdges)
	}
}

func TestGWValue_KeepsBothSidesWhenCombinedNonNegative(t *testing.T) {
	prizes := []float64{5, 100}
	edges := []EdgeEndpoints{{0, 1}}
	costs := []float64{10}
	cs := newClusterStore(prizes, edges, costs, nil)
	mergedID := cs.merge(0, 1, 0, 1.0)

	value, nodes, gwEdges := gwValue(cs, mergedID, costs, prizes)
	if value != 95 {
		t.Fatalf("gwValue: got %v, want 95 (5+100-10)", value)
	}
	if len(nodes) != 2 {
		t.Fatalf("gwValue nodes: got %v, want both endpoints", nodes)
	}
	if len(gwEdges) != 1 || gwEdges[0] != 0 {
		t.Fatalf("gwValue edges: got %v, want [0]", gwEdges)
	}
}

// ------------------------------------------------------------------------
// 3. End-to-end pruning against small worked scenarios.
// ------------------------------------------------------------------------

func TestPrune_ChainScenario_AllStrategiesKeepEverything(t *testing.T) {
	in := chainInput()
	r := newRunner(in, len(in.Prizes), len(in.Edges))
	good := r.run()

	for _, mode := range []PruningMode{PruneNone, PruneSimple, PruneGW, PruneStrong} {
		selected, err := prune(mode, r.cs, in, len(in.Prizes), good)
		if err != nil {
			t.Fatalf("prune(%v): unexpected error %v", mode, err)
		}
		if len(selected) != 3 {
			t.Fatalf("prune(%v): got %v, want all 3 chain edges", mode, selected)
		}
	}
}

func TestPrune_StarScenario_GWKeepsAllFourEdges(t *testing.T) {
	in := Input{
		Edges:  []EdgeEndpoints{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
		Costs:  []float64{10, 12, 8, 15},
		Prizes: []float64{0, 100, 80, 60, 90},
	}
	n := len(in.Prizes)
	r := newRunner(in, n, len(in.Edges))
	good := r.run()

	selected, err := prune(PruneGW, r.cs, in, n, good)
	if err != nil {
		t.Fatalf("prune: unexpected error %v", err)
	}
	if len(selected) != 4 {
		t.Fatalf("PruneGW on star: got %v, want all 4 spokes", selected)
	}
}

func TestPrune_TriangleScenario_GrowthNeverTightensAnyEdge(t *testing.T) {
	// Every node's own prize is too small to let any edge accumulate
	// enough combined moat before both endpoints deactivate: no edge ever
	// becomes good, so every pruning strategy trivially returns empty.
	in := Input{
		Edges:  []EdgeEndpoints{{0, 1}, {1, 2}, {2, 0}},
		Costs:  []float64{100, 100, 100},
		Prizes: []float64{10, 20, 30},
	}
	n := len(in.Prizes)
	r := newRunner(in, n, len(in.Edges))
	good := r.run()
	if len(good) != 0 {
		t.Fatalf("triangle growth: got good edges %v, want none", good)
	}

	for _, mode := range []PruningMode{PruneNone, PruneSimple, PruneGW, PruneStrong} {
		selected, err := prune(mode, r.cs, in, n, good)
		if err != nil {
			t.Fatalf("prune(%v): unexpected error %v", mode, err)
		}
		if len(selected) != 0 {
			t.Fatalf("prune(%v) on triangle: got %v, want empty", mode, selected)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Unknown pruning mode surfaces as an AlgorithmFailure, not a panic.
// ------------------------------------------------------------------------

func TestPrune_UnknownModeReturnsAlgorithmFailure(t *testing.T) {
	in := Input{Edges: nil, Costs: nil, Prizes: []float64{1}}
	cs := newClusterStore(in.Prizes, in.Edges, in.Costs, nil)
	_, err := prune(PruningMode(99), cs, in, 1, nil)
	if err == nil {
		t.Fatalf("expected an error for an unknown pruning mode")
	}
	var solveErr *SolveError
	if se, ok := err.(*SolveError); ok {
		solveErr = se
	} else {
		t.Fatalf("expected *SolveError, got %T", err)
	}
	if solveErr.Kind != ErrKindAlgorithmFailure {
		t.Fatalf("expected ErrKindAlgorithmFailure, got %v", solveErr.Kind)
	}
	if !errors.Is(err, ErrAlgorithmFailure) {
		t.Fatalf("expected errors.Is(err, ErrAlgorithmFailure) to hold")
	}
}
