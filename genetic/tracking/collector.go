package tracking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoScores      = errors.New("tracking: no scores to aggregate")
	ErrOutOfOrder    = errors.New("tracking: generation not after last record")
	ErrUnknownMetric = errors.New("tracking: unknown metric")
)

// Summarize aggregates scores into a record; Std is the population standard deviation
func Summarize(generation, evals int, scores []float64) (Record, error) {
	if len(scores) == 0 {
		return Record{}, ErrNoScores
	}

	mean, std := stat.PopMeanStdDev(scores, nil)
	return Record{
		Generation: generation,
		Evals:      evals,
		Max:        floats.Max(scores),
		Mean:       mean,
		Min:        floats.Min(scores),
		Std:        std,
	}, nil
}

// Logbook is the append-only per-generation statistics history of a run
type Logbook struct {
	records []Record
}

var _ Collector = (*Logbook)(nil)

// NewLogbook creates an empty logbook
func NewLogbook() *Logbook {
	return &Logbook{}
}

func (l *Logbook) Record(generation, evals int, scores []float64) (Record, error) {
	if n := len(l.records); n > 0 && generation <= l.records[n-1].Generation {
		return Record{}, fmt.Errorf("%w: %d after %d", ErrOutOfOrder, generation, l.records[n-1].Generation)
	}

	rec, err := Summarize(generation, evals, scores)
	if err != nil {
		return Record{}, err
	}
	l.records = append(l.records, rec)
	return rec, nil
}

func (l *Logbook) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// FromRecords rebuilds a logbook from a saved history
func FromRecords(records []Record) *Logbook {
	return &Logbook{records: append([]Record(nil), records...)}
}

// Len returns the number of records
func (l *Logbook) Len() int {
	return len(l.records)
}

// Last returns the most recent record
func (l *Logbook) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// Select returns one series per key, each aligned with the records
func (l *Logbook) Select(keys ...string) ([][]float64, error) {
	series := make([][]float64, len(keys))
	for k, key := range keys {
		if _, ok := (Record{}).Get(key); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, key)
		}
		series[k] = make([]float64, len(l.records))
		for i, rec := range l.records {
			series[k][i], _ = rec.Get(key)
		}
	}
	return series, nil
}

func (l *Logbook) Reset() {
	l.records = l.records[:0]
}

// String renders the logbook as an aligned table, one row per generation
func (l *Logbook) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{MetricGeneration, MetricEvals, MetricMax, MetricAvg, MetricMin, MetricStd}, "\t"))
	for _, r := range l.records {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			r.Generation, r.Evals, formatFloat(r.Max), formatFloat(r.Mean), formatFloat(r.Min), formatFloat(r.Std))
	}
	w.Flush()
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
