// Public entry point: validate, run the growth loop, post-process.
package pcst

import "fmt"

// Solve computes an approximate prize-collecting Steiner forest for in. It
// never mutates any caller-owned slice (Edges, Costs, Prizes): Costs is
// copied before growth begins.
//
// Stages: validateInput (structural + numeric checks) -> newRunner/run
// (the moat-growth loop) -> prune (post-process the growth trace per
// in.Pruning) -> assembleResult (sorted, deduplicated node/edge sets).
//
// Solve never panics on invalid input; it returns a *SolveError of kind
// ErrKindInvalidInput instead. An internal invariant violation surfaces as
// ErrKindAlgorithmFailure carrying n, m, root, target, and pruning for
// reproduction, rather than panicking or silently returning a wrong answer.
func Solve(in Input) (res Result, err error) {
	n, m, err := validateInput(in)
	if err != nil {
		return Result{}, err
	}

	defer func() {
		if p := recover(); p != nil {
			var root any
			if in.Root != nil {
				root = *in.Root
			}
			res, err = Result{}, newAlgorithmFailure(fmt.Sprintf("internal panic: %v", p), map[string]any{
				"n": n, "m": m, "root": root, "target": in.TargetNumActiveClusters, "pruning": int(in.Pruning),
			})
		}
	}()

	costs := make([]float64, len(in.Costs))
	copy(costs, in.Costs)
	in.Costs = costs

	r := newRunner(in, n, m)
	goodEdges := r.run()

	selected, err := prune(in.Pruning, r.cs, in, n, goodEdges)
	if err != nil {
		return Result{}, err
	}

	return assembleResult(selected, in, n), nil
}
