package fitness

import "github.com/lixenwraith/onemax/bitstring"

// OneMax scores a genome by its number of set bits
type OneMax struct{}

func (OneMax) Evaluate(bits *bitstring.BitString) (float64, error) {
	return float64(bits.Count()), nil
}

// Optimum is the all-ones genome
func (OneMax) Optimum(length int) float64 {
	return float64(length)
}
