package fitness

import "github.com/lixenwraith/onemax/bitstring"

// DeceptiveTrap splits the genome into blocks of K bits.
// A full block scores K; otherwise a block with t ones scores K-t-1, pulling search toward zeros.
// Trailing bits that do not fill a block are ignored.
type DeceptiveTrap struct {
	K int
}

func (dt DeceptiveTrap) Evaluate(bits *bitstring.BitString) (float64, error) {
	k := dt.K
	if k <= 0 {
		return 0, &BlockSizeError{K: k}
	}

	var fitness float64
	for i := 0; i < bits.Len()/k; i++ {
		t := 0 // number of bits set to 1
		for j := 0; j < k; j++ {
			if bits.Has(i*k + j) {
				t++
			}
		}
		if t == k {
			fitness += float64(t)
		} else {
			fitness += float64(k - t - 1)
		}
	}
	return fitness, nil
}

// Optimum is reached by the all-ones genome over the covered blocks
func (dt DeceptiveTrap) Optimum(length int) float64 {
	if dt.K <= 0 {
		return 0
	}
	return float64(length / dt.K * dt.K)
}
