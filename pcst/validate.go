// Staged, sentinel-only input validation: each stage checks one concern
// and returns a single structured error on the first violation found. No
// logging, no panics on user input; O(n+m) time, no hidden allocations
// beyond the returned error.
package pcst

import (
	"fmt"
	"math"
)

func costIndexDetail(i int, c float64) string  { return fmt.Sprintf("edge %d cost=%v", i, c) }
func prizeIndexDetail(i int, p float64) string { return fmt.Sprintf("node %d prize=%v", i, p) }
func edgeIndexDetail(i int, e EdgeEndpoints) string {
	return fmt.Sprintf("edge %d endpoints=(%d,%d)", i, e.U, e.V)
}
func rootDetail(root uint32, n int) string { return fmt.Sprintf("root=%d n=%d", root, n) }

// validateInput runs every validation stage in order and returns (n, m) on
// success. Validation happens entirely before any growth-phase allocation.
func validateInput(in Input) (n, m int, err error) {
	n = len(in.Prizes)
	m = len(in.Edges)

	if err = validateCosts(in.Costs); err != nil {
		return 0, 0, err
	}
	if err = validatePrizes(in.Prizes); err != nil {
		return 0, 0, err
	}
	if err = validateEdgeEndpoints(in.Edges, n); err != nil {
		return 0, 0, err
	}
	if len(in.Costs) != len(in.Edges) {
		return 0, 0, newInvalidInputError(SubkindCostCountMismatch, ErrCostCountMismatch,
			fmt.Sprintf("len(Costs)=%d len(Edges)=%d", len(in.Costs), len(in.Edges)))
	}
	if err = validateRoot(in.Root, n); err != nil {
		return 0, 0, err
	}
	if in.Root != nil && in.TargetNumActiveClusters != 0 {
		return 0, 0, newInvalidInputError(SubkindRootConflictsWithClusters, ErrRootConflictsWithClusters,
			"TargetNumActiveClusters must be 0 when Root is set")
	}
	if in.Root != nil && in.Pruning == PruneGW {
		return 0, 0, newInvalidInputError(SubkindRootedGWUnsupported, ErrRootedGWUnsupported,
			"rooted solves cannot use PruneGW")
	}

	return n, m, nil
}

// validateCosts rejects negative, NaN, or infinite edge costs.
func validateCosts(costs []float64) error {
	for i, c := range costs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return newInvalidInputError(SubkindNonFinite, ErrNonFinite,
				costIndexDetail(i, c))
		}
		if c < 0 {
			return newInvalidInputError(SubkindNegativeCost, ErrNegativeCost,
				costIndexDetail(i, c))
		}
	}

	return nil
}

// validatePrizes rejects negative, NaN, or infinite node prizes.
func validatePrizes(prizes []float64) error {
	for i, p := range prizes {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return newInvalidInputError(SubkindNonFinite, ErrNonFinite,
				prizeIndexDetail(i, p))
		}
		if p < 0 {
			return newInvalidInputError(SubkindNegativePrize, ErrNegativePrize,
				prizeIndexDetail(i, p))
		}
	}

	return nil
}

// validateEdgeEndpoints rejects any endpoint outside [0, n).
func validateEdgeEndpoints(edges []EdgeEndpoints, n int) error {
	for i, e := range edges {
		if int(e.U) >= n || int(e.V) >= n {
			return newInvalidInputError(SubkindEdgeEndpointOutOfRange, ErrEdgeEndpointOutOfRange,
				edgeIndexDetail(i, e))
		}
	}

	return nil
}

// validateRoot rejects a root index outside [0, n).
func validateRoot(root *uint32, n int) error {
	if root == nil {
		return nil
	}
	if int(*root) >= n {
		return newInvalidInputError(SubkindRootOutOfRange, ErrRootOutOfRange,
			rootDetail(*root, n))
	}

	return nil
}
