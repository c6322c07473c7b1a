// Package fitness provides the fitness evaluators the genetic engine maximizes.
package fitness

import (
	"math"

	"github.com/lixenwraith/onemax/bitstring"
)

// Problem evaluates genomes and knows the best attainable score for a genome length
type Problem interface {
	// Evaluate must be deterministic and free of side effects on bits
	Evaluate(bits *bitstring.BitString) (float64, error)
	// Optimum returns the theoretical maximum for genomes of the given length
	Optimum(length int) float64
}

// Func adapts a caller-supplied evaluator with no known optimum.
// Runs driven by a Func never converge early and stop at the generation cap.
type Func func(bits *bitstring.BitString) (float64, error)

func (f Func) Evaluate(bits *bitstring.BitString) (float64, error) {
	return f(bits)
}

func (f Func) Optimum(int) float64 {
	return math.Inf(1)
}

// Total lifts an evaluator that cannot fail into a Func
func Total(fn func(bits *bitstring.BitString) float64) Func {
	return func(bits *bitstring.BitString) (float64, error) {
		return fn(bits), nil
	}
}
