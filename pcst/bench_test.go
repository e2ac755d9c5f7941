package pcst_test

import (
	"math/rand"
	"testing"

	"github.com/prizesteiner/pcst/pcst"
)

// buildRandomInstance constructs a random connected-ish instance: a random
// spanning tree (to guarantee connectivity) plus extra random edges up to
// roughly the given average degree, with uniform random costs and prizes.
func buildRandomInstance(n int, avgDegree int, seed int64) pcst.Input {
	r := rand.New(rand.NewSource(seed))

	var edges []pcst.EdgeEndpoints
	var costs []float64
	for v := 1; v < n; v++ {
		u := r.Intn(v)
		edges = append(edges, pcst.EdgeEndpoints{U: uint32(u), V: uint32(v)})
		costs = append(costs, r.Float64()*10+1)
	}
	extra := n * avgDegree / 2
	for i := 0; i < extra; i++ {
		u := uint32(r.Intn(n))
		v := uint32(r.Intn(n))
		if u == v {
			continue
		}
		edges = append(edges, pcst.EdgeEndpoints{U: u, V: v})
		costs = append(costs, r.Float64()*10+1)
	}

	prizes := make([]float64, n)
	for v := range prizes {
		prizes[v] = r.Float64() * 50
	}

	in := pcst.DefaultOptions(edges, costs, prizes)
	in.Pruning = pcst.PruneGW

	return in
}

// BenchmarkSolve measures Solve's growth-plus-pruning cost across instance
// sizes and pruning strategies.
func BenchmarkSolve(b *testing.B) {
	cases := []struct {
		name      string
		n         int
		avgDegree int
	}{
		{"Small", 50, 3},
		{"Medium", 500, 4},
		{"Large", 2000, 5},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			in := buildRandomInstance(tc.n, tc.avgDegree, int64(tc.n))

			for _, mode := range []pcst.PruningMode{pcst.PruneNone, pcst.PruneSimple, pcst.PruneGW, pcst.PruneStrong} {
				in := in
				in.Pruning = mode
				b.Run(mode.String(), func(b *testing.B) {
					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						_, _ = pcst.Solve(in)
					}
				})
			}
		})
	}
}

// BenchmarkSolve_Star measures the star-topology pathological case: one
// Steiner hub connecting many independently profitable leaves.
func BenchmarkSolve_Star(b *testing.B) {
	const leaves = 1000
	edges := make([]pcst.EdgeEndpoints, leaves)
	costs := make([]float64, leaves)
	prizes := make([]float64, leaves+1)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < leaves; i++ {
		edges[i] = pcst.EdgeEndpoints{U: 0, V: uint32(i + 1)}
		costs[i] = r.Float64()*10 + 1
		prizes[i+1] = r.Float64() * 50
	}

	in := pcst.DefaultOptions(edges, costs, prizes)
	in.Pruning = pcst.PruneGW

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pcst.Solve(in)
	}
}
