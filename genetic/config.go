package genetic

import (
	"github.com/lixenwraith/onemax/parameter"
)

// EngineConfig holds configuration parameters for the algorithm
type EngineConfig struct {
	// PopulationSize is the number of individuals maintained in each generation
	PopulationSize int `yaml:"population_size"`
	// GenomeLength is the number of bits per individual
	GenomeLength int `yaml:"genome_length"`
	// CrossoverProbability is the chance each offspring pair is recombined (0-1)
	CrossoverProbability float64 `yaml:"crossover_probability"`
	// MutationProbability is the chance each offspring enters mutation (0-1)
	MutationProbability float64 `yaml:"mutation_probability"`
	// PerBitMutationProbability is the absolute per-gene flip chance of a mutated offspring (nil means 1/GenomeLength)
	PerBitMutationProbability *float64 `yaml:"per_bit_mutation_probability,omitempty"`
	// TournamentSize is the number of entrants per tournament
	TournamentSize int `yaml:"tournament_size"`
	// MaxGenerations is the maximum number of generations to run
	MaxGenerations int `yaml:"max_generations"`
	// HallOfFameSize bounds the elitist archive (0 disables it)
	HallOfFameSize int `yaml:"hall_of_fame_size"`
	// Seed for random number generation; any value replays exactly.
	// nil draws a random seed, which the engine stores in its config.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// DefaultConfig returns the OneMax defaults.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		PopulationSize:       parameter.GAPopulationSize,
		GenomeLength:         parameter.GAGenomeLength,
		CrossoverProbability: parameter.GACrossoverProbability,
		MutationProbability:  parameter.GAMutationProbability,
		TournamentSize:       parameter.GATournamentSize,
		MaxGenerations:       parameter.GAMaxGenerations,
		HallOfFameSize:       parameter.GAHallOfFameSize,
		Seed:                 FixedSeed(parameter.GASeed),
	}
}

// Probability returns p for the optional PerBitMutationProbability field
func Probability(p float64) *float64 {
	return &p
}

// FixedSeed returns seed for the optional Seed field
func FixedSeed(seed uint64) *uint64 {
	return &seed
}

// clone detaches the optional fields from the receiver's pointers
func (c EngineConfig) clone() EngineConfig {
	if c.PerBitMutationProbability != nil {
		c.PerBitMutationProbability = Probability(*c.PerBitMutationProbability)
	}
	if c.Seed != nil {
		c.Seed = FixedSeed(*c.Seed)
	}
	return c
}

// BitProbability returns the effective per-bit mutation probability
func (c EngineConfig) BitProbability() float64 {
	if c.PerBitMutationProbability != nil {
		return *c.PerBitMutationProbability
	}
	if c.GenomeLength > 0 {
		return 1.0 / float64(c.GenomeLength)
	}
	return 0
}

// Validate reports the first invalid field as a *ConfigurationError
func (c EngineConfig) Validate() error {
	switch {
	case c.PopulationSize < 2:
		// A tournament needs two members to draw from
		return &ConfigurationError{Field: "population_size", Reason: "must be at least 2"}
	case c.GenomeLength <= 0:
		return &ConfigurationError{Field: "genome_length", Reason: "must be positive"}
	case c.GenomeLength < 2 && c.CrossoverProbability > 0:
		return &ConfigurationError{Field: "genome_length", Reason: "must be at least 2 when crossover is enabled"}
	case !isProbability(c.CrossoverProbability):
		return &ConfigurationError{Field: "crossover_probability", Reason: "must be in [0, 1]"}
	case !isProbability(c.MutationProbability):
		return &ConfigurationError{Field: "mutation_probability", Reason: "must be in [0, 1]"}
	case c.PerBitMutationProbability != nil && !isProbability(*c.PerBitMutationProbability):
		return &ConfigurationError{Field: "per_bit_mutation_probability", Reason: "must be in [0, 1]"}
	case c.TournamentSize < 2:
		return &ConfigurationError{Field: "tournament_size", Reason: "must be at least 2"}
	case c.MaxGenerations <= 0:
		return &ConfigurationError{Field: "max_generations", Reason: "must be positive"}
	case c.HallOfFameSize < 0:
		return &ConfigurationError{Field: "hall_of_fame_size", Reason: "must not be negative"}
	}
	return nil
}

// NaN fails both comparisons
func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// DefaultOperators builds tournament selection, single-point crossover and bit-flip mutation
func DefaultOperators(c EngineConfig) Operators {
	return Operators{
		Selector:  &TournamentSelector{TournamentSize: c.TournamentSize},
		Crossover: OnePointCrossover{},
		Mutator:   &FlipBitMutator{Probability: c.BitProbability()},
	}
}
