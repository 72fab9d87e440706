package core_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchkit/core"
)

// counter is a tiny one-dimensional domain: states are integers, "INC" adds
// one and "DEC" subtracts one, both cost 1, the goal is the target value.
type counter struct {
	target int
	limit  int
}

func (c counter) InitialState() int { return 0 }

func (c counter) Actions(s int) []string {
	acts := make([]string, 0, 2)
	if s < c.limit {
		acts = append(acts, "INC")
	}
	if s > -c.limit {
		acts = append(acts, "DEC")
	}

	return acts
}

func (c counter) Result(s int, a string) (int, error) {
	switch a {
	case "INC":
		return s + 1, nil
	case "DEC":
		return s - 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidAction, a)
	}
}

func (c counter) StepCost(int, string, int) float64 { return 1.0 }

func (c counter) IsGoal(s int) bool { return s == c.target }

func (c counter) Key(s int) int { return s }

func (c counter) Display(s int) string { return fmt.Sprintf("%d", s) }

// climbToTarget is a minimal Algorithm that walks straight to the target.
type climbToTarget struct{}

func (climbToTarget) Search(p core.Problem[int, string]) (core.Result[int, string], error) {
	n := core.NewRoot[int, string](p.InitialState())
	for !p.IsGoal(n.State) {
		next, err := n.Child(p, "INC")
		if err != nil {
			return core.Result[int, string]{}, err
		}
		n = next
	}

	return core.Result[int, string]{Solution: n, Success: true, Runtime: time.Microsecond}, nil
}

func TestNewRoot(t *testing.T) {
	root := core.NewRoot[int, string](7)

	assert.Equal(t, 7, root.State)
	assert.Nil(t, root.Parent)
	assert.Zero(t, root.PathCost)
	assert.Zero(t, root.Depth)
}

func TestNode_ChildAccumulatesCostAndDepth(t *testing.T) {
	p := counter{target: 3, limit: 5}
	root := core.NewRoot[int, string](0)

	child, err := root.Child(p, "INC")
	require.NoError(t, err)
	assert.Equal(t, 1, child.State)
	assert.Equal(t, 1.0, child.PathCost)
	assert.Equal(t, 1, child.Depth)
	assert.Same(t, root, child.Parent)

	grand, err := child.Child(p, "DEC")
	require.NoError(t, err)
	assert.Equal(t, 0, grand.State)
	assert.Equal(t, 2.0, grand.PathCost)
	assert.Equal(t, 2, grand.Depth)
}

func TestNode_ChildPropagatesResultError(t *testing.T) {
	p := counter{target: 3, limit: 5}
	root := core.NewRoot[int, string](0)

	_, err := root.Child(p, "JUMP")
	assert.ErrorIs(t, err, core.ErrInvalidAction)
}

func TestNode_ExpandFollowsActionOrder(t *testing.T) {
	p := counter{target: 3, limit: 5}
	root := core.NewRoot[int, string](0)

	children, err := root.Expand(p)
	require.NoError(t, err)
	require.Len(t, children, 2)

	assert.Equal(t, "INC", children[0].Action)
	assert.Equal(t, 1, children[0].State)
	assert.Equal(t, "DEC", children[1].Action)
	assert.Equal(t, -1, children[1].State)
}

func TestNode_ExpandAtBoundary(t *testing.T) {
	p := counter{target: 3, limit: 5}
	edge := core.NewRoot[int, string](5)

	children, err := edge.Expand(p)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "DEC", children[0].Action)
}

func TestNode_PathAndActions(t *testing.T) {
	p := counter{target: 3, limit: 5}
	n := core.NewRoot[int, string](0)
	for i := 0; i < 3; i++ {
		var err error
		n, err = n.Child(p, "INC")
		require.NoError(t, err)
	}

	path := n.Path()
	require.Len(t, path, 4)
	for i, node := range path {
		assert.Equal(t, i, node.State)
		assert.Equal(t, i, node.Depth)
	}

	assert.Equal(t, []string{"INC", "INC", "INC"}, n.Actions())
	assert.Empty(t, path[0].Actions())
}

func TestResult_EmptyDefaults(t *testing.T) {
	var res core.Result[int, string]

	assert.False(t, res.Success)
	assert.NotNil(t, res.Path())
	assert.Empty(t, res.Path())
	assert.True(t, math.IsInf(res.Cost(), 1))
}

func TestResult_WithSolution(t *testing.T) {
	p := counter{target: 2, limit: 5}
	root := core.NewRoot[int, string](0)
	child, err := root.Child(p, "INC")
	require.NoError(t, err)

	res := core.Result[int, string]{Solution: child, Success: true}
	assert.Equal(t, 1.0, res.Cost())
	assert.Len(t, res.Path(), 2)
}

func TestAgent_SolveDelegates(t *testing.T) {
	p := counter{target: 3, limit: 5}

	ag, err := core.NewAgent[int, string](p, climbToTarget{})
	require.NoError(t, err)

	res, err := ag.Solve()
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 3.0, res.Cost())
	assert.Equal(t, []string{"INC", "INC", "INC"}, res.Solution.Actions())
}

func TestAgent_NilInputs(t *testing.T) {
	p := counter{target: 3, limit: 5}

	_, err := core.NewAgent[int, string](nil, climbToTarget{})
	assert.ErrorIs(t, err, core.ErrNilProblem)

	_, err = core.NewAgent[int, string](p, nil)
	assert.ErrorIs(t, err, core.ErrNilAlgorithm)
}
