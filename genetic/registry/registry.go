// Package registry runs a set of named experiments side by side and persists their reports.
package registry

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/onemax/genetic/report"
)

// Registry manages experiment registration and execution
type Registry struct {
	experiments map[string]*TrackedExperiment
	order       []string
	reports     *report.Manager
	logger      *zap.Logger
	mu          sync.RWMutex
}

// NewRegistry creates a registry writing reports under reportPath
func NewRegistry(reportPath string, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		experiments: make(map[string]*TrackedExperiment),
		reports:     report.NewManager(reportPath),
		logger:      logger,
	}
}

// Register validates an experiment and builds its engine
func (r *Registry) Register(config ExperimentConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("experiment %q: %w", config.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.experiments[config.Name]; exists {
		return fmt.Errorf("experiment %q already registered", config.Name)
	}

	te, err := NewTrackedExperiment(config, r.logger)
	if err != nil {
		return fmt.Errorf("experiment %q: %w", config.Name, err)
	}
	r.experiments[config.Name] = te
	r.order = append(r.order, config.Name)
	return nil
}

// RunAll runs every registered experiment concurrently and waits for all of them.
// Each engine has its own RNG stream, so results do not depend on scheduling.
func (r *Registry) RunAll(ctx context.Context) error {
	r.mu.RLock()
	tracked := make([]*TrackedExperiment, len(r.order))
	for i, name := range r.order {
		tracked[i] = r.experiments[name]
	}
	r.mu.RUnlock()

	errs := make([]error, len(tracked))
	var wg sync.WaitGroup
	for i, te := range tracked {
		wg.Add(1)
		go func(i int, te *TrackedExperiment) {
			defer wg.Done()
			if err := te.Run(ctx); err != nil {
				errs[i] = fmt.Errorf("experiment %q: %w", te.Config.Name, err)
			}
		}(i, te)
	}
	wg.Wait()

	err := multierr.Combine(errs...)
	if err != nil {
		r.logger.Warn("experiments failed", zap.Error(err))
	}
	return err
}

// Names returns experiment names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Stats returns statistics of a named experiment
func (r *Registry) Stats(name string) (Stats, bool) {
	r.mu.RLock()
	te, ok := r.experiments[name]
	r.mu.RUnlock()

	if !ok {
		return Stats{}, false
	}
	return te.Stats(), true
}

// SaveAll writes a report per experiment
func (r *Registry) SaveAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var err error
	for _, name := range r.order {
		te := r.experiments[name]
		if saveErr := r.reports.Save(name, te.Report()); saveErr != nil {
			err = multierr.Append(err, saveErr)
			continue
		}
		r.logger.Info("report saved", zap.String("experiment", name), zap.String("path", r.reports.FilePath(name)))
	}
	return err
}

// Reports returns the report manager for reading saved reports
func (r *Registry) Reports() *report.Manager {
	return r.reports
}

// GetTracker returns tracker for direct access
func (r *Registry) GetTracker(name string) *TrackedExperiment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.experiments[name]
}
