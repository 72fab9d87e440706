package puzzle

import "errors"

// Sentinel errors returned by the puzzle constructors.
var (
	// ErrBadSize indicates a board dimension below 2.
	ErrBadSize = errors.New("puzzle: size must be at least 2")

	// ErrBadState indicates a state whose length or tile multiset does not
	// match the board (must be a permutation of 0..n·n-1).
	ErrBadState = errors.New("puzzle: state is not a valid board permutation")

	// ErrBadDepth indicates a negative scramble depth.
	ErrBadDepth = errors.New("puzzle: scramble depth must be non-negative")
)

// State is a complete board configuration: one byte per cell in row-major
// order, tile values 1..n·n-1 and 0 for the blank. Being a string, it is
// comparable, hashable and cheap to copy.
type State string

// Action moves the blank one cell in the named direction.
type Action string

// The complete action alphabet, in canonical enumeration order.
const (
	Up    Action = "UP"
	Down  Action = "DOWN"
	Left  Action = "LEFT"
	Right Action = "RIGHT"
)
