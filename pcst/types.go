package pcst

import (
	"errors"
	"fmt"
)

// Kind-level sentinels matched by SolveError.Is: errors.Is(err,
// ErrInvalidInput) holds for every validation error regardless of
// subkind, errors.Is(err, ErrAlgorithmFailure) for every internal
// invariant violation.
var (
	ErrInvalidInput     = errors.New("pcst: invalid input")
	ErrAlgorithmFailure = errors.New("pcst: algorithm failure")
)

// Sentinel errors returned by validateInput. Each wraps into a *SolveError
// of kind ErrKindInvalidInput with the matching InvalidInputSubkind, so
// callers can branch on either the sentinel (errors.Is) or the subkind.
var (
	// ErrNegativeCost indicates an edge cost below zero.
	ErrNegativeCost = errors.New("pcst: edge cost is negative")

	// ErrNegativePrize indicates a node prize below zero.
	ErrNegativePrize = errors.New("pcst: node prize is negative")

	// ErrNonFinite indicates a NaN or infinite cost/prize value.
	ErrNonFinite = errors.New("pcst: cost or prize is NaN or infinite")

	// ErrRootOutOfRange indicates Input.Root does not index [0, n).
	ErrRootOutOfRange = errors.New("pcst: root index out of range")

	// ErrRootConflictsWithClusters indicates a root was set alongside a
	// non-zero TargetNumActiveClusters; rooted solves require target 0.
	ErrRootConflictsWithClusters = errors.New("pcst: rooted solves require TargetNumActiveClusters == 0")

	// ErrEdgeEndpointOutOfRange indicates an edge references a node index
	// outside [0, n).
	ErrEdgeEndpointOutOfRange = errors.New("pcst: edge endpoint out of range")

	// ErrCostCountMismatch indicates len(Costs) != len(Edges).
	ErrCostCountMismatch = errors.New("pcst: Costs length must equal Edges length")

	// ErrRootedGWUnsupported indicates pruning=GW was requested together
	// with a root. GW's merge-tree replay is not proven sound when a root
	// pins retention; rather than silently falling back to another
	// strategy, the combination is rejected outright.
	ErrRootedGWUnsupported = errors.New("pcst: rooted solves do not support GW pruning; use Simple or Strong")
)

// Logger receives human-readable progress messages from a solve. It is
// called synchronously from within Solve; implementations that need
// concurrency safety must provide their own synchronization. A nil Logger
// disables logging entirely.
type Logger func(message string)

// PruningMode selects the post-processing strategy applied to the growth
// trace.
type PruningMode int

const (
	// PruneNone returns every good edge untouched; useful for benchmarking
	// the raw growth phase.
	PruneNone PruningMode = iota

	// PruneSimple iteratively strips leaf edges whose removal improves the
	// objective.
	PruneSimple

	// PruneGW walks the merge tree in reverse chronological order and, at
	// each merge whose two sides' combined value does not cover the
	// connecting edge, drops the weaker side and the edge. A side is not
	// tested on its own value alone.
	// This is the default used by DefaultOptions.
	PruneGW

	// PruneStrong applies PruneGW, then a rooted DFS per component that
	// independently (and cascadingly) drops subtrees that do not cover
	// their attaching edge's cost.
	PruneStrong
)

// String renders the pruning mode for logging and error messages.
func (p PruningMode) String() string {
	switch p {
	case PruneNone:
		return "none"
	case PruneSimple:
		return "simple"
	case PruneGW:
		return "gw"
	case PruneStrong:
		return "strong"
	default:
		return fmt.Sprintf("PruningMode(%d)", int(p))
	}
}

// EdgeEndpoints names the unordered pair of node indices an edge connects.
// Parallel edges and self-loops (U == V) are permitted.
type EdgeEndpoints struct {
	U, V uint32
}

// Input is the complete, immutable description of one PCST/PCSF instance.
// The core never mutates caller-owned slices; Solve copies anything it
// needs to adjust.
type Input struct {
	// Edges has length m; Edges[e] names the endpoints of edge e.
	Edges []EdgeEndpoints
	// Costs has length m; Costs[e] is edge e's cost, must be >= 0 and finite.
	Costs []float64
	// Prizes has length n; Prizes[v] is node v's prize, must be >= 0 and finite.
	Prizes []float64
	// Root, if non-nil, pins the solution to contain and connect through
	// node *Root. Encoding "-1"/NULL-style "no root" sentinels is the host
	// adapter's job, not the core's.
	Root *uint32
	// TargetNumActiveClusters bounds how many components an unrooted
	// forest may end in; must be 0 if Root is set.
	TargetNumActiveClusters uint32
	// Pruning selects the post-processing strategy. The zero value
	// (PruneNone) is NOT the default used by DefaultOptions; callers
	// constructing Input directly should set this explicitly.
	Pruning PruningMode
	// Verbosity gates how much detail LogSink receives: 0 is silent, 1
	// logs merges and termination, >=2 logs every popped event.
	Verbosity uint8
	// LogSink, if non-nil, receives progress messages gated by Verbosity.
	LogSink Logger
}

// Option configures an Input via DefaultOptions-style functional options,
// matching the rest of this module's configuration idiom.
type Option func(*Input)

// WithRoot pins the solve to node r.
func WithRoot(r uint32) Option {
	return func(in *Input) { in.Root = &r }
}

// WithTargetNumActiveClusters sets the unrooted termination target.
func WithTargetNumActiveClusters(k uint32) Option {
	return func(in *Input) { in.TargetNumActiveClusters = k }
}

// WithPruning selects the pruning strategy.
func WithPruning(mode PruningMode) Option {
	return func(in *Input) { in.Pruning = mode }
}

// WithVerbosity sets the log verbosity level.
func WithVerbosity(v uint8) Option {
	return func(in *Input) { in.Verbosity = v }
}

// WithLogSink installs a logging callback.
func WithLogSink(sink Logger) Option {
	return func(in *Input) { in.LogSink = sink }
}

// DefaultOptions returns an Input carrying the given edges/costs/prizes
// and every other field set to its default: no root, target 0 (prune to a
// single forest), pruning GW, silent logging.
// Any opts are applied in order after the defaults, so a later
// option overrides an earlier one touching the same field.
func DefaultOptions(edges []EdgeEndpoints, costs, prizes []float64, opts ...Option) Input {
	in := Input{
		Edges:   edges,
		Costs:   costs,
		Prizes:  prizes,
		Root:    nil,
		Pruning: PruneGW,
	}
	for _, opt := range opts {
		opt(&in)
	}

	return in
}

// Result is the selected forest: distinct node indices and distinct edge
// indices (referring back into the original Input.Edges), sorted
// ascending for determinism.
type Result struct {
	NodeIDs []uint32
	EdgeIDs []uint32
}

// ErrorKind classifies a *SolveError at the level the external interface
// promises: either the input itself was invalid, or the algorithm failed
// internally (a bug, not a user error).
type ErrorKind int

const (
	// ErrKindInvalidInput means the input failed validation before growth
	// began; see SolveError.Subkind for specifics.
	ErrKindInvalidInput ErrorKind = iota
	// ErrKindAlgorithmFailure means an internal invariant was violated.
	// This should never happen on valid input; if it does, SolveError.Context
	// carries diagnostic state for reproduction.
	ErrKindAlgorithmFailure
)

// String renders the error kind for log messages.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindInvalidInput:
		return "InvalidInput"
	case ErrKindAlgorithmFailure:
		return "AlgorithmFailure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// InvalidInputSubkind refines ErrKindInvalidInput with the specific rule
// that was violated.
type InvalidInputSubkind int

const (
	// SubkindNone applies when Kind != ErrKindInvalidInput.
	SubkindNone InvalidInputSubkind = iota
	SubkindNegativeCost
	SubkindNegativePrize
	SubkindNonFinite
	SubkindRootOutOfRange
	SubkindRootConflictsWithClusters
	SubkindEdgeEndpointOutOfRange
	SubkindCostCountMismatch
	// SubkindRootedGWUnsupported flags the rejected (rooted, gw) combination.
	SubkindRootedGWUnsupported
)

// SolveError is the structured error type returned by Solve. It satisfies
// the standard errors.Is/errors.As protocol: errors.Is(err, ErrNegativeCost)
// works for InvalidInput errors wrapping a sentinel, and a plain
// errors.As(err, &solveErr) recovers the full structured value.
type SolveError struct {
	Kind    ErrorKind
	Subkind InvalidInputSubkind // meaningful only when Kind == ErrKindInvalidInput
	Message string
	// Context carries diagnostic state for AlgorithmFailure errors: n, m,
	// root, target, pruning, and whatever else narrows down the bug.
	Context map[string]any
	// wrapped is the underlying sentinel, if any, so errors.Is/Unwrap work.
	wrapped error
}

// Error implements the error interface.
func (e *SolveError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == ErrKindAlgorithmFailure {
		return fmt.Sprintf("pcst: algorithm failure: %s (context: %v)", e.Message, e.Context)
	}
	return fmt.Sprintf("pcst: invalid input: %s", e.Message)
}

// Unwrap exposes the wrapped sentinel error for errors.Is/errors.As chains.
func (e *SolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.wrapped
}

// Is matches the kind-level sentinels, so errors.Is(err, ErrInvalidInput)
// and errors.Is(err, ErrAlgorithmFailure) work without naming a specific
// subkind sentinel. Subkind sentinels keep matching through Unwrap.
func (e *SolveError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrInvalidInput:
		return e.Kind == ErrKindInvalidInput
	case ErrAlgorithmFailure:
		return e.Kind == ErrKindAlgorithmFailure
	}

	return false
}

// newInvalidInputError builds a *SolveError of kind ErrKindInvalidInput
// wrapping sentinel err, with a message carrying the offending index/value.
func newInvalidInputError(subkind InvalidInputSubkind, sentinel error, detail string) *SolveError {
	return &SolveError{
		Kind:    ErrKindInvalidInput,
		Subkind: subkind,
		Message: fmt.Sprintf("%s: %s", sentinel.Error(), detail),
		wrapped: sentinel,
	}
}

// newAlgorithmFailure builds a *SolveError of kind ErrKindAlgorithmFailure
// carrying diagnostic context. Callers reach this only on an internal
// invariant violation; it is returned, never swallowed.
func newAlgorithmFailure(message string, context map[string]any) *SolveError {
	return &SolveError{
		Kind:    ErrKindAlgorithmFailure,
		Message: message,
		Context: context,
	}
}
