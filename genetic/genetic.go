// Package genetic implements a generational genetic algorithm over fixed-length bit-string genomes
// 1. Individuals carry a cached fitness that variation operators invalidate explicitly
// 2. Operators are concrete values chosen once at construction, not looked up by name
// 3. Every stochastic draw goes through one *rand.Rand owned by the engine, so seeded runs replay exactly
package genetic

import (
	"math/rand/v2"
)

// --- Concrete Operator Implementations ---

// TournamentSelector implements tournament selection with replacement
// Each output slot is the best of TournamentSize uniformly drawn entrants
type TournamentSelector struct {
	// TournamentSize is the number of entrants competing in each tournament
	TournamentSize int
}

// Select runs k independent tournaments over pop
// Ties go to the first-drawn maximal entrant; the same member may win many times
func (ts *TournamentSelector) Select(pop *Population, k int, rng *rand.Rand) ([]*Individual, error) {
	poolSize := pop.Size()
	if poolSize < 2 {
		return nil, precondition("select", "tournament needs at least 2 members, population has %d", poolSize)
	}
	if ts.TournamentSize < 2 {
		return nil, precondition("select", "tournament size %d below 2", ts.TournamentSize)
	}
	if k < 0 {
		return nil, precondition("select", "negative selection count %d", k)
	}
	if err := requireValid("select", pop); err != nil {
		return nil, err
	}

	selected := make([]*Individual, 0, k)
	for len(selected) < k {
		winner := pop.Members[rng.IntN(poolSize)]
		for i := 1; i < ts.TournamentSize; i++ {
			entrant := pop.Members[rng.IntN(poolSize)]
			if entrant.Fitness.value > winner.Fitness.value {
				winner = entrant
			}
		}
		selected = append(selected, winner)
	}

	return selected, nil
}

// RouletteSelector implements fitness-proportionate selection
// Fitness values must be non-negative; an all-zero population degrades to uniform sampling
type RouletteSelector struct{}

// Select spins the wheel k times, one Float64 draw per spin
func (rs *RouletteSelector) Select(pop *Population, k int, rng *rand.Rand) ([]*Individual, error) {
	poolSize := pop.Size()
	if poolSize < 2 {
		return nil, precondition("select", "roulette needs at least 2 members, population has %d", poolSize)
	}
	if k < 0 {
		return nil, precondition("select", "negative selection count %d", k)
	}
	if err := requireValid("select", pop); err != nil {
		return nil, err
	}

	totalScore := 0.0
	cumulative := make([]float64, poolSize)
	for i, m := range pop.Members {
		if m.Fitness.value < 0 {
			return nil, precondition("select", "roulette member %d has negative fitness %v", i, m.Fitness.value)
		}
		totalScore += m.Fitness.value
		cumulative[i] = totalScore
	}

	selected := make([]*Individual, k)
	for i := 0; i < k; i++ {
		if totalScore == 0 {
			selected[i] = pop.Members[rng.IntN(poolSize)]
			continue
		}

		spin := rng.Float64() * totalScore
		selected[i] = pop.Members[poolSize-1]
		for j, cum := range cumulative {
			if spin < cum {
				selected[i] = pop.Members[j]
				break
			}
		}
	}

	return selected, nil
}

// OnePointCrossover swaps the genome suffixes of two individuals past one random cut
type OnePointCrossover struct{}

// Mate draws the cut uniformly from [1, L-1] and recombines a and b in place
func (OnePointCrossover) Mate(a, b *Individual, rng *rand.Rand) error {
	if err := requirePair("crossover", a, b); err != nil {
		return err
	}
	length := a.Genome.Len()
	if length < 2 {
		return precondition("crossover", "genome length %d leaves no cut point", length)
	}
	return CrossAt(a, b, 1+rng.IntN(length-1))
}

// CrossAt performs single-point crossover at cut: a' = a[:cut]+b[cut:], b' = b[:cut]+a[cut:]
func CrossAt(a, b *Individual, cut int) error {
	if err := requirePair("crossover", a, b); err != nil {
		return err
	}
	length := a.Genome.Len()
	if cut < 1 || cut > length-1 {
		return precondition("crossover", "cut %d outside [1, %d]", cut, length-1)
	}

	a.Genome.SwapSuffix(b.Genome, cut)
	a.Invalidate()
	b.Invalidate()
	return nil
}

// UniformCrossover swaps each position between two individuals independently
type UniformCrossover struct {
	// SwapProbability is the per-position chance of exchanging genes
	SwapProbability float64
}

// Mate draws one Float64 per position in genome order
func (uc *UniformCrossover) Mate(a, b *Individual, rng *rand.Rand) error {
	if err := requirePair("crossover", a, b); err != nil {
		return err
	}

	for i := 0; i < a.Genome.Len(); i++ {
		if rng.Float64() < uc.SwapProbability {
			a.Genome.SwapAt(b.Genome, i)
		}
	}

	a.Invalidate()
	b.Invalidate()
	return nil
}

func requirePair(op string, a, b *Individual) error {
	if a == nil || b == nil {
		return precondition(op, "nil parent")
	}
	if a == b || a.Genome == b.Genome {
		return precondition(op, "parents share a genome buffer")
	}
	if a.Genome.Len() != b.Genome.Len() {
		return precondition(op, "genome lengths differ: %d != %d", a.Genome.Len(), b.Genome.Len())
	}
	return nil
}

func requireValid(op string, pop *Population) error {
	for i, m := range pop.Members {
		if !m.Fitness.Valid() {
			return precondition(op, "member %d has invalid fitness", i)
		}
	}
	return nil
}
