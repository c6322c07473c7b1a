package registry

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/onemax/genetic"
	"github.com/lixenwraith/onemax/genetic/fitness"
	"github.com/lixenwraith/onemax/parameter"
)

// Problem kinds
const (
	ProblemOneMax = "onemax"
	ProblemTrap   = "trap"
)

// Selection kinds
const (
	SelectionTournament = "tournament"
	SelectionRoulette   = "roulette"
)

// Crossover kinds
const (
	CrossoverOnePoint = "one_point"
	CrossoverUniform  = "uniform"
)

// ExperimentConfig defines one named run of the engine
type ExperimentConfig struct {
	Name      string `yaml:"name"`
	Problem   string `yaml:"problem"`
	TrapSize  int    `yaml:"trap_size"`
	Selection string `yaml:"selection"`
	Crossover string `yaml:"crossover"`
	// PerBitScale sets the per-bit flip probability to PerBitScale/genome_length.
	// It excludes engine.per_bit_mutation_probability, which is absolute.
	PerBitScale *float64             `yaml:"per_bit_scale,omitempty"`
	Engine      genetic.EngineConfig `yaml:"engine"`
}

// DefaultExperiment returns a OneMax experiment with the default engine configuration
func DefaultExperiment(name string) ExperimentConfig {
	return ExperimentConfig{
		Name:      name,
		Problem:   ProblemOneMax,
		TrapSize:  parameter.GATrapSize,
		Selection: SelectionTournament,
		Crossover: CrossoverOnePoint,
		Engine:    genetic.DefaultConfig(),
	}
}

// UnmarshalYAML fills omitted fields from DefaultExperiment
func (c *ExperimentConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain ExperimentConfig
	p := plain(DefaultExperiment(""))
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = ExperimentConfig(p)
	return nil
}

// Validate checks the experiment and its engine configuration
func (c ExperimentConfig) Validate() error {
	if c.Name == "" {
		return &genetic.ConfigurationError{Field: "name", Reason: "must not be empty"}
	}
	if _, err := c.problem(); err != nil {
		return err
	}
	if _, err := c.operators(); err != nil {
		return err
	}
	if c.PerBitScale != nil && c.Engine.PerBitMutationProbability != nil {
		return &genetic.ConfigurationError{Field: "per_bit_scale", Reason: "excludes per_bit_mutation_probability"}
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return err
	}
	// A trap wider than the genome has no whole block, so every genome is optimal
	if c.Problem == ProblemTrap && c.TrapSize > c.Engine.GenomeLength {
		return &genetic.ConfigurationError{
			Field:  "trap_size",
			Reason: fmt.Sprintf("%d exceeds genome length %d", c.TrapSize, c.Engine.GenomeLength),
		}
	}
	return nil
}

// EngineConfig returns the engine configuration with PerBitScale applied
func (c ExperimentConfig) EngineConfig() genetic.EngineConfig {
	cfg := c.Engine
	if c.PerBitScale != nil && cfg.GenomeLength > 0 {
		cfg.PerBitMutationProbability = genetic.Probability(*c.PerBitScale / float64(cfg.GenomeLength))
	}
	return cfg
}

func (c ExperimentConfig) problem() (fitness.Problem, error) {
	switch c.Problem {
	case ProblemOneMax:
		return fitness.OneMax{}, nil
	case ProblemTrap:
		if c.TrapSize <= 0 {
			return nil, &fitness.BlockSizeError{K: c.TrapSize}
		}
		return fitness.DeceptiveTrap{K: c.TrapSize}, nil
	}
	return nil, &genetic.ConfigurationError{Field: "problem", Reason: fmt.Sprintf("unknown kind %q", c.Problem)}
}

func (c ExperimentConfig) operators() (genetic.Operators, error) {
	ops := genetic.DefaultOperators(c.EngineConfig())

	switch c.Selection {
	case SelectionTournament:
	case SelectionRoulette:
		ops.Selector = &genetic.RouletteSelector{}
	default:
		return ops, &genetic.ConfigurationError{Field: "selection", Reason: fmt.Sprintf("unknown kind %q", c.Selection)}
	}

	switch c.Crossover {
	case CrossoverOnePoint:
	case CrossoverUniform:
		ops.Crossover = &genetic.UniformCrossover{SwapProbability: parameter.GAUniformSwapProbability}
	default:
		return ops, &genetic.ConfigurationError{Field: "crossover", Reason: fmt.Sprintf("unknown kind %q", c.Crossover)}
	}

	return ops, nil
}

// Plan is a list of experiments read from a YAML file
type Plan struct {
	ReportPath  string             `yaml:"report_path"`
	Experiments []ExperimentConfig `yaml:"experiments"`
}

// LoadPlan reads a plan file. Experiment fields left out take their defaults.
func LoadPlan(path string) (Plan, error) {
	plan := Plan{ReportPath: parameter.GeneticReportPath}

	data, err := os.ReadFile(path)
	if err != nil {
		return plan, errors.Wrap(err, "read plan")
	}
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return plan, errors.Wrapf(err, "decode plan %s", path)
	}
	if len(plan.Experiments) == 0 {
		return plan, errors.Errorf("plan %s has no experiments", path)
	}
	return plan, nil
}

// Stats holds the latest population statistics of an experiment
type Stats struct {
	Generation   int
	State        genetic.State
	BestFitness  float64
	WorstFitness float64
	AvgFitness   float64
	TotalEvals   int
}
