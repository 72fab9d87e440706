package puzzle

import "github.com/katalvlaran/searchkit/core"

// The heuristics are factory-built: each factory precomputes its goal
// lookup tables once and returns the pure evaluation method of a small
// read-only struct. Evaluation is side-effect-free, so a single heuristic
// value is safe to share across concurrent searches.

// MisplacedTiles counts non-blank tiles that are not in their goal cell.
// Admissible: every misplaced tile needs at least one move.
//
// Complexity per evaluation: O(n²).
func MisplacedTiles(goal State) core.Heuristic[State] {
	m := &misplaced{goal: goal}

	return m.evaluate
}

type misplaced struct {
	goal State
}

func (m *misplaced) evaluate(s State) float64 {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] != 0 && s[i] != m.goal[i] {
			count++
		}
	}

	return float64(count)
}

// ManhattanDistance sums, over non-blank tiles, the taxicab distance from
// the tile's cell to its goal cell. Admissible and consistent for the
// sliding-tile puzzle.
//
// Complexity per evaluation: O(n²) with O(1) per-tile table lookups.
func ManhattanDistance(goal State, size int) core.Heuristic[State] {
	return goalTable(goal, size).evaluate
}

// manhattan holds the precomputed tile → goal-position table.
type manhattan struct {
	size    int
	goalRow []int // goalRow[tile] = goal row of tile
	goalCol []int // goalCol[tile] = goal column of tile
}

// goalTable builds the goal-position lookup for all tiles (blank included).
func goalTable(goal State, size int) *manhattan {
	m := &manhattan{
		size:    size,
		goalRow: make([]int, size*size),
		goalCol: make([]int, size*size),
	}
	for idx := 0; idx < len(goal); idx++ {
		m.goalRow[goal[idx]] = idx / size
		m.goalCol[goal[idx]] = idx % size
	}

	return m
}

func (m *manhattan) evaluate(s State) float64 {
	total := 0
	for idx := 0; idx < len(s); idx++ {
		tile := s[idx]
		if tile == 0 {
			continue
		}
		total += abs(idx/m.size-m.goalRow[tile]) + abs(idx%m.size-m.goalCol[tile])
	}

	return float64(total)
}

// LinearConflict is ManhattanDistance plus 2 for every pair of tiles that
// sit in their goal row (or column) but in reversed goal order: each such
// pair forces at least two extra moves. Dominates ManhattanDistance and
// remains admissible.
//
// Complexity per evaluation: O(n³) worst case (pairs within each line).
func LinearConflict(goal State, size int) core.Heuristic[State] {
	lc := &linearConflict{table: goalTable(goal, size)}

	return lc.evaluate
}

type linearConflict struct {
	table *manhattan
}

func (lc *linearConflict) evaluate(s State) float64 {
	m := lc.table
	base := m.evaluate(s)

	conflicts := 0

	// Row conflicts: tiles whose goal row is their current row, compared
	// pairwise in column order.
	var lineGoals []int
	for r := 0; r < m.size; r++ {
		lineGoals = lineGoals[:0]
		for c := 0; c < m.size; c++ {
			tile := s[r*m.size+c]
			if tile != 0 && m.goalRow[tile] == r {
				lineGoals = append(lineGoals, m.goalCol[tile])
			}
		}
		conflicts += inversions(lineGoals)
	}

	// Column conflicts: same test transposed.
	for c := 0; c < m.size; c++ {
		lineGoals = lineGoals[:0]
		for r := 0; r < m.size; r++ {
			tile := s[r*m.size+c]
			if tile != 0 && m.goalCol[tile] == c {
				lineGoals = append(lineGoals, m.goalRow[tile])
			}
		}
		conflicts += inversions(lineGoals)
	}

	return base + 2*float64(conflicts)
}

// inversions counts pairs i<j with goals[i] > goals[j].
func inversions(goals []int) int {
	count := 0
	for i := 0; i < len(goals); i++ {
		for j := i + 1; j < len(goals); j++ {
			if goals[i] > goals[j] {
				count++
			}
		}
	}

	return count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
