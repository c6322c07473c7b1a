package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/onemax/genetic"
	"github.com/lixenwraith/onemax/genetic/report"
)

// setFlags overrides command-line flags for one test
func setFlags(t *testing.T, values map[string]string) {
	t.Helper()
	for name, value := range values {
		f := flag.Lookup(name)
		require.NotNil(t, f, "unknown flag %s", name)
		old := f.Value.String()
		require.NoError(t, flag.Set(name, value))
		t.Cleanup(func() { flag.Set(name, old) })
	}
}

func smallRunFlags(out string) map[string]string {
	return map[string]string{
		"length": "12",
		"pop":    "24",
		"gens":   "40",
		"hof":    "3",
		"seed":   "5",
		"out":    out,
	}
}

func TestRun_SingleExperiment(t *testing.T) {
	out := t.TempDir()
	setFlags(t, smallRunFlags(out))

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), zap.NewNop(), &buf))

	text := buf.String()
	for _, want := range []string{"== onemax", "gen", "nevals", "Hall of Fame:", "Best:"} {
		assert.Contains(t, text, want)
	}

	r, err := report.NewManager(out).Load("onemax")
	require.NoError(t, err, "expected saved report")
	assert.Equal(t, 12, r.Config.GenomeLength)
	require.NotNil(t, r.Config.Seed)
	assert.Equal(t, uint64(5), *r.Config.Seed)
	assert.Nil(t, r.Config.PerBitMutationProbability, "per-bit left to 1/length")
	assert.Len(t, r.HallOfFame, 3)
}

func TestRun_ExplicitZeroPerBit(t *testing.T) {
	out := t.TempDir()
	flags := smallRunFlags(out)
	flags["indpb"] = "0"
	setFlags(t, flags)

	require.NoError(t, run(context.Background(), zap.NewNop(), &bytes.Buffer{}))

	r, err := report.NewManager(out).Load("onemax")
	require.NoError(t, err)
	require.NotNil(t, r.Config.PerBitMutationProbability)
	assert.Equal(t, 0.0, *r.Config.PerBitMutationProbability)
}

func TestRun_ScaledPerBit(t *testing.T) {
	out := t.TempDir()
	flags := smallRunFlags(out)
	flags["indpb-scaled"] = "3"
	setFlags(t, flags)

	require.NoError(t, run(context.Background(), zap.NewNop(), &bytes.Buffer{}))

	r, err := report.NewManager(out).Load("onemax")
	require.NoError(t, err)
	require.NotNil(t, r.Config.PerBitMutationProbability)
	assert.Equal(t, 3.0/12, *r.Config.PerBitMutationProbability)
}

func TestRun_ScaledAndAbsolutePerBit(t *testing.T) {
	flags := smallRunFlags("")
	flags["indpb"] = "0.1"
	flags["indpb-scaled"] = "1"
	setFlags(t, flags)

	err := run(context.Background(), zap.NewNop(), &bytes.Buffer{})
	var cfgErr *genetic.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
	assert.Equal(t, "per_bit_scale", cfgErr.Field)
}

func TestRun_RandomSeedIsRecorded(t *testing.T) {
	out := t.TempDir()
	flags := smallRunFlags(out)
	flags["random-seed"] = "true"
	setFlags(t, flags)

	require.NoError(t, run(context.Background(), zap.NewNop(), &bytes.Buffer{}))

	r, err := report.NewManager(out).Load("onemax")
	require.NoError(t, err)
	assert.NotNil(t, r.Config.Seed)
}

func TestRun_RejectsSingleMember(t *testing.T) {
	setFlags(t, map[string]string{"pop": "1"})

	var buf bytes.Buffer
	assert.Error(t, run(context.Background(), zap.NewNop(), &buf), "population of 1")
	assert.Zero(t, buf.Len(), "expected no output")
}

func TestOptionalFloat(t *testing.T) {
	var o optionalFloat
	assert.Equal(t, "", o.String())

	require.NoError(t, o.Set("0"))
	require.NotNil(t, o.value)
	assert.Equal(t, 0.0, *o.value)
	assert.Equal(t, "0", o.String())

	assert.Error(t, o.Set("half"))

	require.NoError(t, o.Set(""))
	assert.Nil(t, o.value)
}

func TestRun_Plan(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	plan := `
experiments:
  - name: small
    engine: {genome_length: 10, population_size: 20, max_generations: 10, seed: 1}
  - name: small-trap
    problem: trap
    trap_size: 5
    selection: roulette
    crossover: uniform
    engine: {genome_length: 10, population_size: 20, max_generations: 10, seed: 1}
`
	require.NoError(t, os.WriteFile(planPath, []byte(plan), 0644))
	setFlags(t, map[string]string{"plan": planPath, "out": dir})

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), zap.NewNop(), &buf))

	for _, name := range []string{"small", "small-trap"} {
		assert.Contains(t, buf.String(), "== "+name+" (")
		assert.True(t, report.NewManager(dir).Exists(name), "expected report for %s", name)
	}
}

func TestRealMain_ExitCode(t *testing.T) {
	setFlags(t, map[string]string{"pop": "1"})
	assert.Equal(t, 1, realMain(), "invalid configuration")

	setFlags(t, smallRunFlags(""))
	assert.Equal(t, 0, realMain())
}
