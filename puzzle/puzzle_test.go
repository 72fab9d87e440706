package puzzle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchkit/core"
	"github.com/katalvlaran/searchkit/puzzle"
)

// board is shorthand for building a State from tiles in row-major order.
func board(t *testing.T, tiles ...int) puzzle.State {
	t.Helper()
	s, err := puzzle.FromTiles(tiles)
	require.NoError(t, err)

	return s
}

func TestGoal(t *testing.T) {
	assert.Equal(t, board(t, 1, 2, 3, 4, 5, 6, 7, 8, 0), puzzle.Goal(3))
	assert.Equal(t, board(t, 1, 2, 3, 0), puzzle.Goal(2))
}

func TestNew_Defaults(t *testing.T) {
	p, err := puzzle.New(3, "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, p.Size())
	assert.Equal(t, puzzle.Goal(3), p.GoalState())
	assert.Equal(t, puzzle.Goal(3), p.InitialState())
	assert.True(t, p.IsGoal(p.InitialState()))
}

func TestNew_Validation(t *testing.T) {
	_, err := puzzle.New(1, "", "")
	assert.ErrorIs(t, err, puzzle.ErrBadSize)

	// Wrong length.
	_, err = puzzle.New(3, board(t, 1, 2, 3, 0), "")
	assert.ErrorIs(t, err, puzzle.ErrBadState)

	// Duplicated tile.
	_, err = puzzle.New(3, board(t, 1, 1, 3, 4, 5, 6, 7, 8, 0), "")
	assert.ErrorIs(t, err, puzzle.ErrBadState)

	// Custom goal is validated too.
	_, err = puzzle.New(3, "", board(t, 9, 2, 3, 4, 5, 6, 7, 8, 0))
	assert.ErrorIs(t, err, puzzle.ErrBadState)
}

func TestActions_EnumerationOrder(t *testing.T) {
	p, err := puzzle.New(3, "", "")
	require.NoError(t, err)

	// Blank in the bottom-right corner: only Up and Left.
	assert.Equal(t, []puzzle.Action{puzzle.Up, puzzle.Left}, p.Actions(puzzle.Goal(3)))

	// Blank in the center: all four, in the fixed order.
	center := board(t, 1, 2, 3, 4, 0, 5, 6, 7, 8)
	assert.Equal(t,
		[]puzzle.Action{puzzle.Up, puzzle.Down, puzzle.Left, puzzle.Right},
		p.Actions(center))

	// Blank in the top-left corner: only Down and Right.
	topLeft := board(t, 0, 2, 3, 4, 5, 6, 7, 8, 1)
	assert.Equal(t, []puzzle.Action{puzzle.Down, puzzle.Right}, p.Actions(topLeft))
}

func TestResult_MovesBlank(t *testing.T) {
	p, err := puzzle.New(3, "", "")
	require.NoError(t, err)

	next, err := p.Result(puzzle.Goal(3), puzzle.Left)
	require.NoError(t, err)
	assert.Equal(t, board(t, 1, 2, 3, 4, 5, 6, 7, 0, 8), next)

	// Right undoes Left.
	back, err := p.Result(next, puzzle.Right)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Goal(3), back)
}

func TestResult_IllegalMoves(t *testing.T) {
	p, err := puzzle.New(3, "", "")
	require.NoError(t, err)

	// Blank already in the last column and row.
	_, err = p.Result(puzzle.Goal(3), puzzle.Right)
	assert.ErrorIs(t, err, core.ErrInvalidAction)
	_, err = p.Result(puzzle.Goal(3), puzzle.Down)
	assert.ErrorIs(t, err, core.ErrInvalidAction)

	_, err = p.Result(puzzle.Goal(3), puzzle.Action("SIDEWAYS"))
	assert.ErrorIs(t, err, core.ErrInvalidAction)
}

func TestStepCostAndKey(t *testing.T) {
	p, err := puzzle.New(3, "", "")
	require.NoError(t, err)

	s := puzzle.Goal(3)
	assert.Equal(t, 1.0, p.StepCost(s, puzzle.Left, s))
	assert.Equal(t, s, p.Key(s))
}

func TestAlphabet(t *testing.T) {
	p, err := puzzle.New(3, "", "")
	require.NoError(t, err)

	assert.Equal(t,
		[]puzzle.Action{puzzle.Up, puzzle.Down, puzzle.Left, puzzle.Right},
		p.Alphabet())
}

func TestDisplay(t *testing.T) {
	p, err := puzzle.New(3, "", "")
	require.NoError(t, err)

	want := " 1  2  3\n 4  5  6\n 7  8  ."
	assert.Equal(t, want, p.Display(puzzle.Goal(3)))
}

func TestNewScrambled(t *testing.T) {
	_, err := puzzle.NewScrambled(1, 5, nil)
	assert.ErrorIs(t, err, puzzle.ErrBadSize)

	_, err = puzzle.NewScrambled(3, -1, nil)
	assert.ErrorIs(t, err, puzzle.ErrBadDepth)

	// Depth zero is the solved board.
	p, err := puzzle.NewScrambled(3, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Goal(3), p.InitialState())

	// Same seed, same scramble; the result is always a valid board that
	// round-trips through New.
	a, err := puzzle.NewScrambled(3, 25, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	b, err := puzzle.NewScrambled(3, 25, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	assert.Equal(t, a.InitialState(), b.InitialState())

	_, err = puzzle.New(3, a.InitialState(), "")
	assert.NoError(t, err)
}

func TestFromTilesRoundTrip(t *testing.T) {
	tiles := []int{1, 2, 3, 4, 5, 6, 7, 8, 0}
	s, err := puzzle.FromTiles(tiles)
	require.NoError(t, err)
	assert.Equal(t, tiles, s.Tiles())

	_, err = puzzle.FromTiles([]int{-1, 2, 3})
	assert.ErrorIs(t, err, puzzle.ErrBadState)
	_, err = puzzle.FromTiles([]int{300, 2, 3})
	assert.ErrorIs(t, err, puzzle.ErrBadState)
}
