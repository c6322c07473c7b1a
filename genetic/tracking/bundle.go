package tracking

// Standard metric keys (conventions)
const (
	MetricGeneration = "gen"
	MetricEvals      = "nevals"
	MetricMax        = "max"
	MetricAvg        = "avg"
	MetricMin        = "min"
	MetricStd        = "std"
)

// Record is the aggregate of one generation's fitness values
type Record struct {
	Generation int     `yaml:"gen"`
	Evals      int     `yaml:"nevals"`
	Max        float64 `yaml:"max"`
	Mean       float64 `yaml:"avg"`
	Min        float64 `yaml:"min"`
	Std        float64 `yaml:"std"`
}

// Get returns the value for a metric key
func (r Record) Get(key string) (float64, bool) {
	switch key {
	case MetricGeneration:
		return float64(r.Generation), true
	case MetricEvals:
		return float64(r.Evals), true
	case MetricMax:
		return r.Max, true
	case MetricAvg:
		return r.Mean, true
	case MetricMin:
		return r.Min, true
	case MetricStd:
		return r.Std, true
	}
	return 0, false
}

// Collector accumulates one record per generation
type Collector interface {
	// Record aggregates scores for a generation and appends the result
	Record(generation, evals int, scores []float64) (Record, error)

	// Records returns the recorded history in order
	Records() []Record

	// Reset clears accumulated state for reuse
	Reset()
}
