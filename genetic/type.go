package genetic

import (
	"math/rand/v2"
	"strconv"

	"github.com/lixenwraith/onemax/bitstring"
)

// --- Core Data Structures ---

// Fitness is a cached fitness value that is either evaluated or invalid
// The zero value is invalid
type Fitness struct {
	value float64
	valid bool
}

// Evaluated returns a valid fitness holding v
func Evaluated(v float64) Fitness {
	return Fitness{value: v, valid: true}
}

// Value returns the fitness value and whether it is valid
func (f Fitness) Value() (float64, bool) {
	return f.value, f.valid
}

// Valid reports whether the fitness corresponds to the current genome
func (f Fitness) Valid() bool {
	return f.valid
}

// Individual is a candidate solution: a genome plus its cached fitness
// Any change to Genome must be followed by Invalidate before the individual is selected or recorded
type Individual struct {
	// Genome holds the bit-string encoding, mutated in place by variation operators
	Genome *bitstring.BitString
	// Fitness is the cached evaluation of Genome (higher = better)
	Fitness Fitness
}

// NewIndividual wraps a genome with an invalid fitness
func NewIndividual(genome *bitstring.BitString) *Individual {
	return &Individual{Genome: genome}
}

// RandomIndividual creates an unevaluated individual of length independent fair bits
func RandomIndividual(length int, rng *rand.Rand) *Individual {
	return NewIndividual(bitstring.Random(length, rng))
}

// Clone deep-copies the genome and copies the fitness as-is
func (ind *Individual) Clone() *Individual {
	return &Individual{
		Genome:  ind.Genome.Clone(),
		Fitness: ind.Fitness,
	}
}

// Invalidate marks the cached fitness stale
func (ind *Individual) Invalidate() {
	ind.Fitness = Fitness{}
}

// SetFitness stores an evaluated fitness
func (ind *Individual) SetFitness(v float64) {
	ind.Fitness = Evaluated(v)
}

func (ind *Individual) String() string {
	if v, ok := ind.Fitness.Value(); ok {
		return ind.Genome.String() + " " + strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ind.Genome.String() + " <invalid>"
}

// Population is the ordered working set of individuals at a given generation
// The population exclusively owns its members
type Population struct {
	// Members contains all individuals in this population
	Members []*Individual
	// Generation tracks the iteration number this population represents
	Generation int
}

// NewPopulation returns an unevaluated random population
func NewPopulation(size, length int, rng *rand.Rand) *Population {
	members := make([]*Individual, size)
	for i := range members {
		members[i] = RandomIndividual(length, rng)
	}
	return &Population{Members: members}
}

// Size returns the number of members
func (p *Population) Size() int {
	return len(p.Members)
}

// Invalid returns the indices of members whose fitness is not valid, in order
func (p *Population) Invalid() []int {
	var idx []int
	for i, m := range p.Members {
		if !m.Fitness.Valid() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Scores returns the fitness values of all members
// Fails if any fitness is invalid
func (p *Population) Scores() ([]float64, error) {
	scores := make([]float64, len(p.Members))
	for i, m := range p.Members {
		v, ok := m.Fitness.Value()
		if !ok {
			return nil, precondition("scores", "member %d has invalid fitness", i)
		}
		scores[i] = v
	}
	return scores, nil
}

// Best returns the first member with the highest valid fitness
func (p *Population) Best() (*Individual, bool) {
	var best *Individual
	for _, m := range p.Members {
		v, ok := m.Fitness.Value()
		if !ok {
			continue
		}
		if best == nil || v > best.Fitness.value {
			best = m
		}
	}
	return best, best != nil
}

// Clone deep-copies every member
func (p *Population) Clone() *Population {
	members := make([]*Individual, len(p.Members))
	for i, m := range p.Members {
		members[i] = m.Clone()
	}
	return &Population{Members: members, Generation: p.Generation}
}

// --- Core Operators as Interfaces ---

// Selector defines the selection operator for choosing parents
// Results alias population members and must be cloned before variation
type Selector interface {
	Select(pop *Population, k int, rng *rand.Rand) ([]*Individual, error)
}

// Crossover recombines two individuals in place, invalidating both
type Crossover interface {
	Mate(a, b *Individual, rng *rand.Rand) error
}

// Mutator perturbs one individual in place and invalidates it
type Mutator interface {
	Mutate(ind *Individual, rng *rand.Rand)
}

// Operators bundles the concrete operator instances an engine runs with
type Operators struct {
	Selector  Selector
	Crossover Crossover
	Mutator   Mutator
}
