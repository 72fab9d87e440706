package core

// Agent binds one Problem to one Algorithm and invokes it. It exists so
// callers can assemble the pairing once and re-run Solve without carrying
// both halves around.
type Agent[S comparable, A comparable] struct {
	problem   Problem[S, A]
	algorithm Algorithm[S, A]
}

// NewAgent validates and pairs a problem with an algorithm.
//
// Errors: ErrNilProblem, ErrNilAlgorithm.
func NewAgent[S comparable, A comparable](p Problem[S, A], alg Algorithm[S, A]) (*Agent[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if alg == nil {
		return nil, ErrNilAlgorithm
	}

	return &Agent[S, A]{problem: p, algorithm: alg}, nil
}

// Solve delegates to the bound algorithm and returns its Result.
func (ag *Agent[S, A]) Solve() (Result[S, A], error) {
	return ag.algorithm.Search(ag.problem)
}
