package report

import (
	"fmt"

	"github.com/lixenwraith/onemax/bitstring"
	"github.com/lixenwraith/onemax/genetic"
	"github.com/lixenwraith/onemax/genetic/tracking"
)

// RunReport is the serializable outcome of one run
type RunReport struct {
	RunID       string               `yaml:"run_id"`
	Name        string               `yaml:"name,omitempty"`
	State       string               `yaml:"state"`
	Generations int                  `yaml:"generations"`
	Evaluations int                  `yaml:"evaluations"`
	Config      genetic.EngineConfig `yaml:"config"`
	Logbook     []tracking.Record    `yaml:"logbook"`
	HallOfFame  []MemberDTO          `yaml:"hall_of_fame"`
}

// MemberDTO is a serializable archived individual
type MemberDTO struct {
	Genome  string  `yaml:"genome"`
	Fitness float64 `yaml:"fitness"`
}

// FromResult converts an engine result to a report
func FromResult(name string, config genetic.EngineConfig, res *genetic.Result) RunReport {
	if res == nil {
		return RunReport{Name: name, Config: config}
	}

	r := RunReport{
		RunID:       res.RunID.String(),
		Name:        name,
		State:       res.State.String(),
		Generations: res.Generations,
		Evaluations: res.Evaluations,
		Config:      config,
		Logbook:     res.Records,
		HallOfFame:  make([]MemberDTO, len(res.HallOfFame)),
	}

	for i, m := range res.HallOfFame {
		score, _ := m.Fitness.Value()
		r.HallOfFame[i] = MemberDTO{
			Genome:  m.Genome.String(),
			Fitness: score,
		}
	}

	return r
}

// Members converts the archived entries back to evaluated individuals
func (r RunReport) Members() ([]*genetic.Individual, error) {
	members := make([]*genetic.Individual, len(r.HallOfFame))

	for i, m := range r.HallOfFame {
		bits, err := bitstring.Parse(m.Genome)
		if err != nil {
			return nil, fmt.Errorf("hall of fame entry %d: %w", i, err)
		}
		members[i] = genetic.NewIndividual(bits)
		members[i].SetFitness(m.Fitness)
	}

	return members, nil
}
