package puzzle

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/searchkit/core"
)

// Problem is the sliding-tile domain: an n×n board whose blank swaps with
// an orthogonal neighbor per move, unit step costs, and a fixed goal state.
// It implements core.Problem[State, Action] and core.Alphabet[Action].
type Problem struct {
	size    int
	initial State
	goal    State
}

// Compile-time contract checks.
var (
	_ core.Problem[State, Action] = (*Problem)(nil)
	_ core.Alphabet[Action]       = (*Problem)(nil)
)

// Goal returns the canonical goal state for an n×n board: tiles 1..n·n-1 in
// row-major order with the blank in the last cell.
func Goal(size int) State {
	cells := size * size
	b := make([]byte, cells)
	for i := 0; i < cells-1; i++ {
		b[i] = byte(i + 1)
	}
	b[cells-1] = 0

	return State(b)
}

// New builds a puzzle of the given size. An empty goal selects the
// canonical goal; an empty initial selects the goal (already solved).
//
// Errors: ErrBadSize for size < 2; ErrBadState when a provided state is not
// a permutation of 0..size²-1.
func New(size int, initial, goal State) (*Problem, error) {
	if size < 2 {
		return nil, ErrBadSize
	}

	if goal == "" {
		goal = Goal(size)
	}
	if err := validateState(size, goal); err != nil {
		return nil, err
	}

	if initial == "" {
		initial = goal
	}
	if err := validateState(size, initial); err != nil {
		return nil, err
	}

	return &Problem{size: size, initial: initial, goal: goal}, nil
}

// NewScrambled builds a solvable puzzle by random-walking depth legal moves
// from the canonical goal. A nil rng selects the deterministic default
// stream, so NewScrambled(3, 20, nil) is reproducible.
//
// Errors: ErrBadSize, ErrBadDepth.
func NewScrambled(size, depth int, rng *rand.Rand) (*Problem, error) {
	if size < 2 {
		return nil, ErrBadSize
	}
	if depth < 0 {
		return nil, ErrBadDepth
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	base := &Problem{size: size, goal: Goal(size)}
	state := base.goal

	var err error
	for i := 0; i < depth; i++ {
		acts := base.Actions(state)
		state, err = base.Result(state, acts[r.Intn(len(acts))])
		if err != nil {
			return nil, err
		}
	}

	return &Problem{size: size, initial: state, goal: base.goal}, nil
}

// Size returns the board dimension n.
func (p *Problem) Size() int { return p.size }

// GoalState returns the goal configuration.
func (p *Problem) GoalState() State { return p.goal }

// InitialState returns the configuration the search starts from.
func (p *Problem) InitialState() State { return p.initial }

// Actions enumerates the legal blank moves for s in the fixed order
// Up, Down, Left, Right.
func (p *Problem) Actions(s State) []Action {
	row, col := p.blankPos(s)

	acts := make([]Action, 0, 4)
	if row > 0 {
		acts = append(acts, Up)
	}
	if row < p.size-1 {
		acts = append(acts, Down)
	}
	if col > 0 {
		acts = append(acts, Left)
	}
	if col < p.size-1 {
		acts = append(acts, Right)
	}

	return acts
}

// Result swaps the blank with the neighbor in the action's direction.
// Illegal moves (off the board, or an unknown action name) return an error
// wrapping core.ErrInvalidAction; Result never silently no-ops.
func (p *Problem) Result(s State, a Action) (State, error) {
	row, col := p.blankPos(s)

	newRow, newCol := row, col
	switch a {
	case Up:
		newRow--
	case Down:
		newRow++
	case Left:
		newCol--
	case Right:
		newCol++
	default:
		return "", fmt.Errorf("%w: unknown action %q", core.ErrInvalidAction, a)
	}

	if newRow < 0 || newRow >= p.size || newCol < 0 || newCol >= p.size {
		return "", fmt.Errorf("%w: %s moves the blank off the board", core.ErrInvalidAction, a)
	}

	blank := row*p.size + col
	swap := newRow*p.size + newCol

	b := []byte(s)
	b[blank], b[swap] = b[swap], b[blank]

	return State(b), nil
}

// StepCost is 1 for every move: the puzzle is a unit-cost domain.
func (p *Problem) StepCost(_ State, _ Action, _ State) float64 { return 1.0 }

// IsGoal reports whether s equals the goal configuration.
func (p *Problem) IsGoal(s State) bool { return s == p.goal }

// Key is the identity: State is already a canonical comparable encoding.
func (p *Problem) Key(s State) State { return s }

// Display renders the board as a grid, the blank as a dot.
func (p *Problem) Display(s State) string {
	var sb strings.Builder
	for r := 0; r < p.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < p.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := s[r*p.size+c]; v == 0 {
				sb.WriteString(" .")
			} else {
				fmt.Fprintf(&sb, "%2d", v)
			}
		}
	}

	return sb.String()
}

// Alphabet returns the complete action alphabet in canonical order.
func (p *Problem) Alphabet() []Action {
	return []Action{Up, Down, Left, Right}
}

// blankPos locates the blank cell as (row, col).
func (p *Problem) blankPos(s State) (int, int) {
	idx := strings.IndexByte(string(s), 0)

	return idx / p.size, idx % p.size
}

// validateState checks length and that the tile multiset is exactly
// {0, 1, .., size²-1}.
func validateState(size int, s State) error {
	cells := size * size
	if len(s) != cells {
		return fmt.Errorf("%w: length %d, want %d", ErrBadState, len(s), cells)
	}

	seen := make([]bool, cells)
	for i := 0; i < cells; i++ {
		v := int(s[i])
		if v >= cells || seen[v] {
			return fmt.Errorf("%w: tile %d out of range or duplicated", ErrBadState, v)
		}
		seen[v] = true
	}

	return nil
}

// FromTiles converts a row-major tile slice (0 = blank) into a State.
// It is the bridge for callers that receive boards as integer lists.
func FromTiles(tiles []int) (State, error) {
	b := make([]byte, len(tiles))
	for i, v := range tiles {
		if v < 0 || v > 255 {
			return "", fmt.Errorf("%w: tile %d not representable", ErrBadState, v)
		}
		b[i] = byte(v)
	}

	return State(b), nil
}

// Tiles converts a State back into a row-major tile slice.
func (s State) Tiles() []int {
	tiles := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		tiles[i] = int(s[i])
	}

	return tiles
}
