package registry

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/onemax/genetic"
	"github.com/lixenwraith/onemax/genetic/report"
)

// TrackedExperiment owns the engine of a single experiment
// The engine is touched only by Run; readers see the last published result
type TrackedExperiment struct {
	Config ExperimentConfig

	engine *genetic.Engine

	mu     sync.RWMutex
	result *genetic.Result
	err    error
}

// NewTrackedExperiment builds the engine, which evaluates generation 0
func NewTrackedExperiment(cfg ExperimentConfig, logger *zap.Logger) (*TrackedExperiment, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	problem, err := cfg.problem()
	if err != nil {
		return nil, err
	}
	ops, err := cfg.operators()
	if err != nil {
		return nil, err
	}

	engine, err := genetic.NewEngine(problem, cfg.EngineConfig(),
		genetic.WithOperators(ops),
		genetic.WithLogger(logger.With(zap.String("experiment", cfg.Name))),
	)
	if err != nil {
		return nil, err
	}

	// Keep the resolved seed and per-bit probability for reports
	cfg.Engine = engine.Config()
	cfg.PerBitScale = nil

	return &TrackedExperiment{
		Config: cfg,
		engine: engine,
		result: engine.Result(),
	}, nil
}

// Run drives the engine to a terminal state and publishes the outcome
func (te *TrackedExperiment) Run(ctx context.Context) error {
	res, err := te.engine.Run(ctx)

	te.mu.Lock()
	te.result = res
	te.err = err
	te.mu.Unlock()

	return err
}

// Result returns the last published result and run error
func (te *TrackedExperiment) Result() (*genetic.Result, error) {
	te.mu.RLock()
	defer te.mu.RUnlock()
	return te.result, te.err
}

// Report converts the last published result to a run report
func (te *TrackedExperiment) Report() report.RunReport {
	res, _ := te.Result()
	return report.FromResult(te.Config.Name, te.Config.Engine, res)
}

// Stats returns statistics of the last recorded generation
func (te *TrackedExperiment) Stats() Stats {
	res, _ := te.Result()

	stats := Stats{
		Generation: res.Generations,
		State:      res.State,
		TotalEvals: res.Evaluations,
	}
	if n := len(res.Records); n > 0 {
		last := res.Records[n-1]
		stats.BestFitness = last.Max
		stats.WorstFitness = last.Min
		stats.AvgFitness = last.Mean
	}
	return stats
}
