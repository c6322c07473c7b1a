package genetic

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/onemax/genetic/fitness"
	"github.com/lixenwraith/onemax/genetic/tracking"
)

// --- Algorithm Engine ---

// State is the lifecycle position of an engine
type State int

const (
	// StateInitialized: generation 0 is evaluated, archived and recorded
	StateInitialized State = iota
	// StateRunning: generations are being produced
	StateRunning
	// StateConverged: the population reached the problem optimum
	StateConverged
	// StateExhausted: the generation cap was reached
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Terminal reports whether the state ends the run
func (s State) Terminal() bool {
	return s == StateConverged || s == StateExhausted
}

// Engine is the generational genetic algorithm driver
// It owns the population, the RNG stream, the archive and the statistics for one run
type Engine struct {
	// Core operators
	problem fitness.Problem
	ops     Operators

	// Configuration
	config  EngineConfig
	optimum float64

	// State
	runID       uuid.UUID
	rng         *rand.Rand
	state       State
	population  *Population
	hallOfFame  *HallOfFame
	collector   tracking.Collector
	evaluations int

	logger *zap.Logger
}

// Option customizes an engine at construction
type Option func(*Engine)

// WithLogger routes engine logs to logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithOperators replaces the default tournament / single-point / bit-flip operators
func WithOperators(ops Operators) Option {
	return func(e *Engine) {
		e.ops = ops
	}
}

// WithCollector replaces the default in-memory logbook
func WithCollector(c tracking.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.collector = c
		}
	}
}

// NewEngine validates config, creates and evaluates the initial population,
// archives it and records generation 0. The engine is returned in StateInitialized.
func NewEngine(problem fitness.Problem, config EngineConfig, opts ...Option) (*Engine, error) {
	if problem == nil {
		return nil, &ConfigurationError{Field: "problem", Reason: "must not be nil"}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Resolve the seed so every run can be replayed from its config
	config = config.clone()
	if config.Seed == nil {
		config.Seed = FixedSeed(rand.Uint64())
	}
	rng := rand.New(rand.NewPCG(*config.Seed, *config.Seed))

	e := &Engine{
		problem:    problem,
		ops:        DefaultOperators(config),
		config:     config,
		optimum:    problem.Optimum(config.GenomeLength),
		runID:      uuid.New(),
		rng:        rng,
		hallOfFame: NewHallOfFame(config.HallOfFameSize),
		collector:  tracking.NewLogbook(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.ops.Selector == nil || e.ops.Crossover == nil || e.ops.Mutator == nil {
		return nil, &ConfigurationError{Field: "operators", Reason: "selector, crossover and mutator are required"}
	}
	e.logger = e.logger.With(zap.String("run", e.runID.String()))

	if err := e.initializePopulation(); err != nil {
		return nil, err
	}
	return e, nil
}

// initializePopulation creates generation 0 and evaluates every member unconditionally
func (e *Engine) initializePopulation() error {
	e.population = NewPopulation(e.config.PopulationSize, e.config.GenomeLength, e.rng)

	evals, err := e.evaluate(e.population)
	if err != nil {
		return errors.Wrap(err, "initial population")
	}
	if err := e.hallOfFame.Update(e.population); err != nil {
		return err
	}
	if err := e.record(evals); err != nil {
		return err
	}

	e.state = StateInitialized
	return nil
}

// Run executes generations until the population converges or the generation cap is hit.
// The context is polled between generations only; on cancellation the engine stays
// in StateRunning with a consistent population and Run returns the wrapped context error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if !e.state.Terminal() {
		e.state = StateRunning
		e.logger.Info("run started",
			zap.Int("population_size", e.config.PopulationSize),
			zap.Int("genome_length", e.config.GenomeLength),
			zap.Int("max_generations", e.config.MaxGenerations),
			zap.Uint64("seed", *e.config.Seed),
		)
	}

	for !e.checkTermination() {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return e.Result(), errors.Wrapf(ctx.Err(), "run interrupted at generation %d", e.population.Generation)
		default:
		}

		if err := e.Step(); err != nil {
			return e.Result(), errors.Wrapf(err, "generation %d", e.population.Generation+1)
		}
	}

	best, _ := e.population.Best()
	e.logger.Info("run finished",
		zap.Stringer("state", e.state),
		zap.Int("generations", e.population.Generation),
		zap.Int("evaluations", e.evaluations),
		zap.Stringer("best", best),
	)
	return e.Result(), nil
}

// checkTermination applies the stopping condition and moves to a terminal state when met
func (e *Engine) checkTermination() bool {
	if e.state.Terminal() {
		return true
	}

	if best, ok := e.population.Best(); ok && best.Fitness.value >= e.optimum {
		e.state = StateConverged
		return true
	}
	if e.population.Generation >= e.config.MaxGenerations {
		e.state = StateExhausted
		return true
	}
	return false
}

// Step evolves exactly one generation.
// RNG draws are consumed in a fixed order: all selection draws, then per offspring pair
// the crossover coin and its cut, then per offspring the mutation coin and its per-bit draws.
func (e *Engine) Step() error {
	if e.state.Terminal() {
		return precondition("step", "engine already %s", e.state)
	}
	e.state = StateRunning

	size := e.config.PopulationSize

	// Select parents; winners may repeat and still alias the current population
	selected, err := e.ops.Selector.Select(e.population, size, e.rng)
	if err != nil {
		return err
	}
	if len(selected) != size {
		return precondition("step", "selector returned %d of %d individuals", len(selected), size)
	}

	// Clone so variation never writes through to the current population
	offspring := make([]*Individual, size)
	for i, ind := range selected {
		offspring[i] = ind.Clone()
	}

	// Recombine consecutive pairs, one coin per pair
	for i := 1; i < size; i += 2 {
		if e.rng.Float64() < e.config.CrossoverProbability {
			if err := e.ops.Crossover.Mate(offspring[i-1], offspring[i], e.rng); err != nil {
				return err
			}
		}
	}

	// Mutate, one coin per offspring
	for _, ind := range offspring {
		if e.rng.Float64() < e.config.MutationProbability {
			e.ops.Mutator.Mutate(ind, e.rng)
		}
	}

	next := &Population{
		Members:    offspring,
		Generation: e.population.Generation + 1,
	}

	// Only touched offspring carry an invalid fitness
	evals, err := e.evaluate(next)
	if err != nil {
		return err
	}

	e.population = next

	if err := e.hallOfFame.Update(next); err != nil {
		return err
	}
	return e.record(evals)
}

// evaluate scores members with invalid fitness and returns how many were evaluated
func (e *Engine) evaluate(pop *Population) (int, error) {
	invalid := pop.Invalid()
	for _, i := range invalid {
		score, err := e.problem.Evaluate(pop.Members[i].Genome)
		if err != nil {
			return 0, &EvaluationError{Index: i, Err: err}
		}
		pop.Members[i].SetFitness(score)
	}
	e.evaluations += len(invalid)
	return len(invalid), nil
}

func (e *Engine) record(evals int) error {
	scores, err := e.population.Scores()
	if err != nil {
		return err
	}

	rec, err := e.collector.Record(e.population.Generation, evals, scores)
	if err != nil {
		return errors.Wrap(err, "record statistics")
	}

	e.logger.Debug("generation",
		zap.Int("gen", rec.Generation),
		zap.Int("nevals", rec.Evals),
		zap.Float64("max", rec.Max),
		zap.Float64("avg", rec.Mean),
	)
	return nil
}

// --- Accessors ---

// Result is the outcome of a run handed to external consumers
type Result struct {
	RunID       uuid.UUID
	State       State
	Generations int
	Evaluations int
	Records     []tracking.Record
	HallOfFame  []*Individual
	Population  *Population
}

// Best returns the top individual of the final population
func (r *Result) Best() (*Individual, bool) {
	if r.Population == nil {
		return nil, false
	}
	return r.Population.Best()
}

// Result snapshots the current run outcome; later steps do not affect it
func (e *Engine) Result() *Result {
	return &Result{
		RunID:       e.runID,
		State:       e.state,
		Generations: e.population.Generation,
		Evaluations: e.evaluations,
		Records:     e.collector.Records(),
		HallOfFame:  e.hallOfFame.Items(),
		Population:  e.population.Clone(),
	}
}

// State returns the lifecycle state
func (e *Engine) State() State {
	return e.state
}

// Generation returns the current generation counter
func (e *Engine) Generation() int {
	return e.population.Generation
}

// Population returns a copy of the current population
func (e *Engine) Population() *Population {
	return e.population.Clone()
}

// HallOfFame returns a copy of the archive contents, best first
func (e *Engine) HallOfFame() []*Individual {
	return e.hallOfFame.Items()
}

// Records returns the statistics history
func (e *Engine) Records() []tracking.Record {
	return e.collector.Records()
}

// RunID returns the identifier attached to logs and reports
func (e *Engine) RunID() uuid.UUID {
	return e.runID
}

// Config returns the validated configuration with the seed resolved
func (e *Engine) Config() EngineConfig {
	return e.config.clone()
}
