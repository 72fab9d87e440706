// Package puzzle implements the sliding-tile puzzle (8-puzzle, 15-puzzle,
// and any n×n generalization) as a core.Problem, together with the three
// classic admissible-or-better heuristics for it.
//
// State encoding: a State is a string of n·n bytes, one tile value per
// byte, with 0 marking the blank. Strings are comparable and hashable, so
// states key deduplication maps directly and Problem.Key is the identity.
//
// Actions name the movement of the BLANK, enumerated in the fixed order
// Up, Down, Left, Right; informed strategies rely on that order for
// deterministic tie-breaking.
//
// Heuristics (factory-built, precomputed goal tables, pure evaluation):
//
//   - MisplacedTiles:    number of non-blank tiles out of place.
//   - ManhattanDistance: sum of tile taxicab distances to their goal cells.
//     Admissible and consistent.
//   - LinearConflict:    Manhattan plus 2 per same-line goal-order inversion.
//     Dominates ManhattanDistance (never smaller) and
//     stays admissible.
//
// Scrambling performs a random walk of legal moves from the goal, so every
// scrambled instance is solvable by construction. The RNG is an explicit
// argument for reproducibility; nil selects a fixed default stream.
package puzzle
