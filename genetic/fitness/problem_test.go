package fitness

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/onemax/bitstring"
)

func TestOneMax_Evaluate(t *testing.T) {
	tests := []struct {
		bits     string
		expected float64
	}{
		{"0000000000", 0},
		{"1111111111", 10},
		{"1010101010", 5},
		{"1", 1},
	}

	for _, tt := range tests {
		got, err := OneMax{}.Evaluate(bitstring.MustParse(tt.bits))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "OneMax(%s)", tt.bits)
	}

	assert.Equal(t, 100.0, OneMax{}.Optimum(100))
}

func TestDeceptiveTrap_Evaluate(t *testing.T) {
	trap := DeceptiveTrap{K: 4}

	tests := []struct {
		bits     string
		expected float64
	}{
		{"11111111", 8},  // both blocks optimal
		{"00000000", 6},  // deceptive local optimum: 3 + 3
		{"11110000", 7},  // 4 + 3
		{"11100001", 2},  // 0 + 2
		{"111111110", 8}, // trailing bit ignored
	}

	for _, tt := range tests {
		got, err := trap.Evaluate(bitstring.MustParse(tt.bits))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "DeceptiveTrap(%s)", tt.bits)
	}

	assert.Equal(t, 8.0, trap.Optimum(10))
}

func TestDeceptiveTrap_InvalidBlock(t *testing.T) {
	_, err := DeceptiveTrap{K: 0}.Evaluate(bitstring.New(4))

	var blockErr *BlockSizeError
	assert.True(t, errors.As(err, &blockErr), "expected BlockSizeError, got %v", err)
}

func TestFunc_NoOptimum(t *testing.T) {
	f := Total(func(bits *bitstring.BitString) float64 { return float64(bits.Len()) })

	got, err := f.Evaluate(bitstring.New(7))
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
	assert.True(t, math.IsInf(f.Optimum(7), 1))
}
