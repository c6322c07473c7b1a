// Package bitstring provides the fixed-length bit-string genome used by the
// genetic engine, backed by a packed bitset.
package bitstring

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BitString is a fixed-length ordered sequence of bits.
// Position 0 is the first gene; String and Parse use genome order.
type BitString struct {
	bits   *bitset.BitSet
	length int
}

// New returns an all-zero bit-string of the given length.
func New(length int) *BitString {
	if length < 0 {
		panic(fmt.Sprintf("bitstring: negative length %d", length))
	}
	return &BitString{bits: bitset.New(uint(length)), length: length}
}

// Random returns a bit-string of independent fair draws, one per position in order
func Random(length int, rng *rand.Rand) *BitString {
	b := New(length)
	for i := 0; i < length; i++ {
		if rng.IntN(2) == 1 {
			b.bits.Set(uint(i))
		}
	}
	return b
}

// Parse converts a string of '0' and '1' characters in genome order.
func Parse(s string) (*BitString, error) {
	b := New(len(s))
	for i, c := range s {
		switch c {
		case '1':
			b.bits.Set(uint(i))
		case '0':
		default:
			return nil, fmt.Errorf("bitstring: invalid character %q at %d", c, i)
		}
	}
	return b, nil
}

// MustParse is Parse that panics on malformed input, for literals in tests and tables
func MustParse(s string) *BitString {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *BitString) check(pos int) {
	if pos < 0 || pos >= b.length {
		panic(fmt.Sprintf("bitstring: index %d out of range [0,%d)", pos, b.length))
	}
}

// Len returns the number of genes.
func (b *BitString) Len() int {
	return b.length
}

// Has tests whether the bit at pos is set.
func (b *BitString) Has(pos int) bool {
	b.check(pos)
	return b.bits.Test(uint(pos))
}

// Set sets the bit at pos to one.
func (b *BitString) Set(pos int) {
	b.check(pos)
	b.bits.Set(uint(pos))
}

// Clear sets the bit at pos to zero.
func (b *BitString) Clear(pos int) {
	b.check(pos)
	b.bits.Clear(uint(pos))
}

// SetTo sets the bit at pos to value.
func (b *BitString) SetTo(pos int, value bool) {
	b.check(pos)
	b.bits.SetTo(uint(pos), value)
}

// Flip inverts the bit at pos.
func (b *BitString) Flip(pos int) {
	b.check(pos)
	b.bits.Flip(uint(pos))
}

// Count returns the number of set bits.
func (b *BitString) Count() int {
	return int(b.bits.Count())
}

// Clone returns a deep copy sharing no storage with b.
func (b *BitString) Clone() *BitString {
	return &BitString{bits: b.bits.Clone(), length: b.length}
}

// Equal reports whether both bit-strings have the same length and content.
func (b *BitString) Equal(other *BitString) bool {
	if other == nil || b.length != other.length {
		return false
	}
	return b.bits.Equal(other.bits)
}

// SwapSuffix exchanges positions [from, Len()) between b and other.
// Both bit-strings must have the same length.
func (b *BitString) SwapSuffix(other *BitString, from int) {
	if b.length != other.length {
		panic(fmt.Sprintf("bitstring: length mismatch %d != %d", b.length, other.length))
	}
	for i := from; i < b.length; i++ {
		bi, oi := b.bits.Test(uint(i)), other.bits.Test(uint(i))
		if bi != oi {
			b.bits.SetTo(uint(i), oi)
			other.bits.SetTo(uint(i), bi)
		}
	}
}

// SwapAt exchanges the single position pos between b and other.
func (b *BitString) SwapAt(other *BitString, pos int) {
	b.check(pos)
	other.check(pos)
	bi, oi := b.bits.Test(uint(pos)), other.bits.Test(uint(pos))
	b.bits.SetTo(uint(pos), oi)
	other.bits.SetTo(uint(pos), bi)
}

func (b *BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for i := 0; i < b.length; i++ {
		if b.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
