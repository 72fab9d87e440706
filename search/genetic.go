package search

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/searchkit/core"
)

// tournamentSize is the number of individuals sampled per parent selection.
const tournamentSize = 3

// GeneticConfig carries the evolutionary parameters. All values are assumed
// valid on entry: PopulationSize > 1, ChromosomeLength ≥ 2, MutationRate in
// [0, 1], MaxGenerations ≥ 1.
type GeneticConfig struct {
	PopulationSize   int
	MutationRate     float64
	MaxGenerations   int
	ChromosomeLength int
}

// DefaultGeneticConfig returns the historical defaults.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize:   50,
		MutationRate:     0.1,
		MaxGenerations:   100,
		ChromosomeLength: 30,
	}
}

// Genetic is a generational GA over fixed-length action chromosomes drawn
// from the domain's complete action alphabet (core.Alphabet). Chromosomes
// are not validated against reachable states at construction; evaluation
// replays the gene sequence from the initial state, silently skipping genes
// that are illegal in the current state (the replay is the one place where
// an illegal action is a legal skip rather than an error).
//
// Fitness is +Inf when the goal is reached mid-replay (evaluation stops
// early) and 1/(h(final)+1) otherwise. Each generation applies elitism of
// one, tournament selection of three, single-point crossover with a cut
// strictly inside the chromosome, and point mutation of a single gene.
//
// NodesExpanded grows by ChromosomeLength per evaluated individual - an
// approximation of replay work, not an exact expansion count.
//
// The RNG is an explicit dependency; a fixed seed reproduces populations,
// selections, crossovers and mutations exactly.
type Genetic[S comparable, A comparable] struct {
	heuristic core.Heuristic[S]
	cfg       GeneticConfig
	rng       *rand.Rand
}

// NewGenetic builds the genetic strategy over h with cfg. A nil rng selects
// the deterministic default stream (seed-0 policy).
func NewGenetic[S comparable, A comparable](h core.Heuristic[S], cfg GeneticConfig, rng *rand.Rand) *Genetic[S, A] {
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	return &Genetic[S, A]{heuristic: h, cfg: cfg, rng: r}
}

// scored pairs a chromosome with its evaluated fitness.
type scored[A comparable] struct {
	fitness    float64
	chromosome []A
}

// Search evolves chromosome populations until an individual reaches the
// goal mid-replay or the generation budget runs out.
//
// Errors: ErrNoAlphabet when p does not implement core.Alphabet or exposes
// an empty alphabet.
func (ga *Genetic[S, A]) Search(p core.Problem[S, A]) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, ErrNilProblem
	}
	if ga.heuristic == nil {
		return core.Result[S, A]{}, ErrNilHeuristic
	}

	withAlphabet, ok := p.(core.Alphabet[A])
	if !ok {
		return core.Result[S, A]{}, ErrNoAlphabet
	}
	alphabet := withAlphabet.Alphabet()
	if len(alphabet) == 0 {
		return core.Result[S, A]{}, ErrNoAlphabet
	}

	start := time.Now()
	initial := p.InitialState()

	// An already-solved instance needs no population at all.
	if p.IsGoal(initial) {
		return core.Result[S, A]{
			Solution: core.NewRoot[S, A](initial),
			Success:  true,
			Runtime:  time.Since(start),
		}, nil
	}

	// Seed the population with uniformly random chromosomes.
	population := make([][]A, ga.cfg.PopulationSize)
	for i := range population {
		population[i] = ga.randomChromosome(alphabet)
	}

	expanded := 0

	var (
		ranking   []scored[A]
		fitness   float64
		finalNode *core.Node[S, A]
		err       error
	)
	for generation := 0; generation < ga.cfg.MaxGenerations; generation++ {
		// 1) Evaluate the whole population.
		ranking = ranking[:0]
		for _, chromosome := range population {
			fitness, finalNode, err = ga.evaluate(p, initial, chromosome)
			if err != nil {
				return core.Result[S, A]{}, err
			}
			expanded += ga.cfg.ChromosomeLength
			ranking = append(ranking, scored[A]{fitness: fitness, chromosome: chromosome})

			// Mid-replay goal: report immediately.
			if math.IsInf(fitness, 1) {
				return core.Result[S, A]{
					Solution:      finalNode,
					Success:       true,
					NodesExpanded: expanded,
					Runtime:       time.Since(start),
					Iterations:    generation,
				}, nil
			}
		}

		// 2) Rank by fitness descending; stable sort keeps equal-fitness
		//    individuals in evaluation order for determinism.
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].fitness > ranking[j].fitness
		})

		// 3) Elitism: the single fittest individual survives unchanged.
		next := make([][]A, 0, ga.cfg.PopulationSize)
		next = append(next, ranking[0].chromosome)

		// 4) Fill the rest: tournament parents, single-point crossover,
		//    point mutation.
		for len(next) < ga.cfg.PopulationSize {
			parent1 := ga.tournament(ranking)
			parent2 := ga.tournament(ranking)
			child := ga.crossover(parent1, parent2)
			ga.mutate(child, alphabet)
			next = append(next, child)
		}

		population = next
	}

	// Generation budget exhausted: re-evaluate the best individual of the
	// final ranking once more and succeed only if it lands on the goal.
	_, finalNode, err = ga.evaluate(p, initial, ranking[0].chromosome)
	if err != nil {
		return core.Result[S, A]{}, err
	}

	success := p.IsGoal(finalNode.State)
	res := core.Result[S, A]{
		Success:       success,
		NodesExpanded: expanded,
		Runtime:       time.Since(start),
		Iterations:    ga.cfg.MaxGenerations,
	}
	if success {
		res.Solution = finalNode
	}

	return res, nil
}

// randomChromosome draws ChromosomeLength genes uniformly from the alphabet.
func (ga *Genetic[S, A]) randomChromosome(alphabet []A) []A {
	chromosome := make([]A, ga.cfg.ChromosomeLength)
	for i := range chromosome {
		chromosome[i] = alphabet[ga.rng.Intn(len(alphabet))]
	}

	return chromosome
}

// evaluate replays a chromosome from the initial state. Genes illegal in
// the current state are skipped and consume no step. Reaching the goal
// mid-replay yields +Inf fitness and stops the replay; otherwise fitness is
// 1/(h(final)+1) after the chromosome is exhausted.
func (ga *Genetic[S, A]) evaluate(p core.Problem[S, A], initial S, chromosome []A) (float64, *core.Node[S, A], error) {
	node := core.NewRoot[S, A](initial)
	state := initial

	var (
		gene A
		next S
		err  error
	)
	for _, gene = range chromosome {
		if !actionLegal(p.Actions(state), gene) {
			continue
		}

		next, err = p.Result(state, gene)
		if err != nil {
			return 0, nil, err
		}

		node = &core.Node[S, A]{
			State:    next,
			Parent:   node,
			Action:   gene,
			PathCost: node.PathCost + 1,
			Depth:    node.Depth + 1,
		}
		state = next

		if p.IsGoal(state) {
			return math.Inf(1), node, nil
		}
	}

	return 1.0 / (ga.heuristic(state) + 1.0), node, nil
}

// tournament samples tournamentSize distinct individuals uniformly and
// returns the chromosome of the fittest.
func (ga *Genetic[S, A]) tournament(ranking []scored[A]) []A {
	k := tournamentSize
	if k > len(ranking) {
		k = len(ranking)
	}

	best := -1
	for _, idx := range ga.rng.Perm(len(ranking))[:k] {
		if best == -1 || ranking[idx].fitness > ranking[best].fitness {
			best = idx
		}
	}

	return ranking[best].chromosome
}

// crossover cuts at a uniformly random point strictly inside the chromosome
// and concatenates parent1's prefix with parent2's suffix into a fresh slice.
func (ga *Genetic[S, A]) crossover(parent1, parent2 []A) []A {
	point := 1 + ga.rng.Intn(len(parent1)-1)

	child := make([]A, 0, len(parent1))
	child = append(child, parent1[:point]...)
	child = append(child, parent2[point:]...)

	return child
}

// mutate replaces one uniformly random gene with a uniformly random action,
// with probability MutationRate. In-place.
func (ga *Genetic[S, A]) mutate(chromosome []A, alphabet []A) {
	if ga.rng.Float64() < ga.cfg.MutationRate {
		chromosome[ga.rng.Intn(len(chromosome))] = alphabet[ga.rng.Intn(len(alphabet))]
	}
}

// actionLegal reports whether gene appears in the valid action list.
func actionLegal[A comparable](valid []A, gene A) bool {
	for _, a := range valid {
		if a == gene {
			return true
		}
	}

	return false
}
