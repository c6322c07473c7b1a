package genetic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/onemax/bitstring"
)

func scoresOf(items []*Individual) []float64 {
	out := make([]float64, len(items))
	for i, ind := range items {
		out[i], _ = ind.Fitness.Value()
	}
	return out
}

func TestHallOfFame_KeepsBestSorted(t *testing.T) {
	hof := NewHallOfFame(3)

	require.NoError(t, hof.Update(&Population{Members: []*Individual{
		evaluated("0001", 1), evaluated("0111", 3), evaluated("0000", 0), evaluated("0011", 2),
	}}))

	assert.Equal(t, []float64{3, 2, 1}, scoresOf(hof.Items()))

	require.NoError(t, hof.Update(&Population{Members: []*Individual{
		evaluated("1111", 4), evaluated("1000", 1),
	}}))

	assert.Equal(t, []float64{4, 3, 2}, scoresOf(hof.Items()))
	best, ok := hof.Best()
	require.True(t, ok)
	assert.Equal(t, "1111", best.Genome.String())
}

func TestHallOfFame_FewerThanCapacity(t *testing.T) {
	hof := NewHallOfFame(10)
	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("01", 1), evaluated("00", 0)}}))

	assert.Equal(t, 2, hof.Len())
	assert.Equal(t, 10, hof.MaxSize())
}

func TestHallOfFame_DistinctGenomes(t *testing.T) {
	hof := NewHallOfFame(5)

	require.NoError(t, hof.Update(&Population{Members: []*Individual{
		evaluated("1100", 2), evaluated("1100", 2), evaluated("0110", 2),
	}}))
	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("1100", 2)}}))

	assert.Equal(t, 2, hof.Len(), "bit-identical genomes must not be archived twice")
}

func TestHallOfFame_NewerEqualEntryGoesFirst(t *testing.T) {
	hof := NewHallOfFame(3)

	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("1100", 2)}}))
	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("0011", 2)}}))

	items := hof.Items()
	assert.Equal(t, "0011", items[0].Genome.String())
	assert.Equal(t, "1100", items[1].Genome.String())
}

func TestHallOfFame_FullRejectsEqualToWorst(t *testing.T) {
	hof := NewHallOfFame(1)

	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("10", 1)}}))
	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("01", 1)}}))

	best, _ := hof.Best()
	assert.Equal(t, "10", best.Genome.String())
}

func TestHallOfFame_SnapshotsAreIndependent(t *testing.T) {
	hof := NewHallOfFame(2)
	live := evaluated("1110", 3)

	require.NoError(t, hof.Update(&Population{Members: []*Individual{live}}))

	live.Genome.Flip(0)
	live.Invalidate()

	best, _ := hof.Best()
	assert.Equal(t, "1110", best.Genome.String())
	assert.True(t, best.Fitness.Valid())

	// Returned items are copies as well
	best.Genome.Flip(1)
	again, _ := hof.Best()
	assert.Equal(t, "1110", again.Genome.String())
}

func TestHallOfFame_ZeroSize(t *testing.T) {
	hof := NewHallOfFame(0)
	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("1", 1)}}))

	assert.Equal(t, 0, hof.Len())
	_, ok := hof.Best()
	assert.False(t, ok)
}

func TestHallOfFame_InvalidFitness(t *testing.T) {
	hof := NewHallOfFame(2)
	err := hof.Update(&Population{Members: []*Individual{NewIndividual(bitstring.New(3))}})

	assert.True(t, errors.Is(err, ErrPrecondition))
	assert.Equal(t, 0, hof.Len())
}

func TestHallOfFame_Clear(t *testing.T) {
	hof := NewHallOfFame(2)
	require.NoError(t, hof.Update(&Population{Members: []*Individual{evaluated("1", 1)}}))
	hof.Clear()
	assert.Equal(t, 0, hof.Len())
}
