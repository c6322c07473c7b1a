package parameter

// Report output directory used by the CLI when -out is given without a value
const (
	// GeneticReportPath is the directory for run report files
	GeneticReportPath = "./reports"
)

// Genetic Algorithm - Problem
const (
	// GAGenomeLength is the OneMax bit-string length
	GAGenomeLength = 100
)

// Genetic Algorithm - Engine Configuration
const (
	// GAPopulationSize is the number of individuals in each generation
	GAPopulationSize = 200

	// GACrossoverProbability is the per-pair chance of recombination (0.0-1.0)
	GACrossoverProbability = 0.9

	// GAMutationProbability is the per-individual chance of entering mutation (0.0-1.0)
	GAMutationProbability = 0.1

	// GAMaxGenerations caps a run
	GAMaxGenerations = 50

	// GATournamentSize for selection pressure
	GATournamentSize = 3

	// GAHallOfFameSize is the elitist archive bound
	GAHallOfFameSize = 10

	// GASeed seeds the engine RNG
	GASeed = 42
)

// Genetic Algorithm - Uniform Crossover
const (
	// GAUniformSwapProbability is the per-gene exchange chance for uniform crossover
	GAUniformSwapProbability = 0.5
)

// Genetic Algorithm - Deceptive Trap
const (
	// GATrapSize is the block length of the deceptive trap problem
	GATrapSize = 4
)
