package core

import "errors"

// Sentinel errors shared by the core contracts.
var (
	// ErrInvalidAction indicates that an action was applied to a state it is
	// not valid in. Domain implementations wrap this sentinel with context.
	ErrInvalidAction = errors.New("core: action not valid in the given state")

	// ErrNilProblem indicates that a nil Problem was supplied.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNilAlgorithm indicates that a nil Algorithm was supplied.
	ErrNilAlgorithm = errors.New("core: algorithm is nil")
)

// Problem is the polymorphic state-space contract. A concrete domain
// implements it once and thereby plugs into every search strategy.
//
// Type parameters:
//
//   - S: the complete domain configuration (state). Must be comparable so
//     that states (or their Key representatives) can key maps directly.
//   - A: the domain operator (action). Must be comparable so strategies can
//     test action membership and equality.
//
// Contracts:
//
//   - InitialState is constant for the lifetime of the Problem.
//   - Actions(s) enumerates every action valid in s, in a fixed order; it
//     never yields an action that Result would reject for s.
//   - Result(s, a) is pure and deterministic; for an invalid a it returns an
//     error wrapping ErrInvalidAction and never silently no-ops.
//   - StepCost(s, a, next) is non-negative; unit-cost domains return 1.
//   - Key(s) returns the deduplication representative of s. For naturally
//     comparable states this is the identity; domains with redundant
//     encodings return a canonical form.
//   - Display(s) is diagnostic only and carries no semantic weight.
type Problem[S comparable, A comparable] interface {
	// InitialState returns the state the search starts from.
	InitialState() S

	// Actions returns the finite, deterministically ordered set of actions
	// valid in state s.
	Actions(s S) []A

	// Result returns the state reached by applying action a to state s.
	Result(s S, a A) (S, error)

	// StepCost returns the cost of reaching next from s via a.
	StepCost(s S, a A, next S) float64

	// IsGoal reports whether s satisfies the goal test.
	IsGoal(s S) bool

	// Key returns the canonical comparable representative of s used for
	// duplicate detection.
	Key(s S) S

	// Display renders s for diagnostics.
	Display(s S) string
}

// Alphabet is an optional Problem upgrade exposing the domain's complete
// action alphabet, i.e. the union of actions over all states. The genetic
// strategy requires it to draw chromosome genes; other strategies ignore it.
type Alphabet[A comparable] interface {
	// Alphabet returns every action the domain defines, in a fixed order.
	Alphabet() []A
}

// Heuristic is a pure, non-negative estimate of the remaining cost from a
// state to the nearest goal. Implementations must be stateless during
// evaluation; precomputed lookup tables are built once and read-only.
type Heuristic[S comparable] func(s S) float64

// Algorithm is the single-operation strategy contract. Search runs to
// completion (success, failure or resource exhaustion) before returning;
// resource exhaustion is a normal Result, not an error.
type Algorithm[S comparable, A comparable] interface {
	Search(p Problem[S, A]) (Result[S, A], error)
}
