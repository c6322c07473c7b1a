package genetic

import (
	"math/rand/v2"
)

// FlipBitMutator inverts each gene independently with Probability
type FlipBitMutator struct {
	// Probability is the per-bit flip chance, typically 1/L
	Probability float64
}

// Mutate draws one Float64 per position in genome order and always invalidates the individual.
// Invalidation follows "subjected to mutation", not "bits changed": a pass that flips nothing
// still forces a re-evaluation of an unchanged genome.
func (m *FlipBitMutator) Mutate(ind *Individual, rng *rand.Rand) {
	for i := 0; i < ind.Genome.Len(); i++ {
		if rng.Float64() < m.Probability {
			ind.Genome.Flip(i)
		}
	}
	ind.Invalidate()
}
