package bitstring

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parsingTests = []string{
	"11111", "00000", "10101", "10000", "00001", "",
}

func TestParsing(t *testing.T) {
	for _, s := range parsingTests {
		bs, err := Parse(s)
		require.NoError(t, err, "Parse(%q)", s)
		assert.Equal(t, s, bs.String(), "Parse(%q).String()", s)
		assert.Equal(t, len(s), bs.Len(), "Parse(%q).Len()", s)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("10x1")
	assert.Error(t, err)
}

var modificationTests = []struct {
	input    string
	index    int
	clear    bool
	expected string
}{
	{"11111", 1, true, "10111"},
	{"11001", 2, false, "11101"},
	{"00000", 4, false, "00001"},
}

func TestModification(t *testing.T) {
	for _, test := range modificationTests {
		bs := MustParse(test.input)
		if test.clear {
			bs.Clear(test.index)
		} else {
			bs.Set(test.index)
		}
		assert.Equal(t, test.expected, bs.String(), "Set/Clear(%q, %d)", test.input, test.index)
	}
}

func TestFlipAndCount(t *testing.T) {
	bs := MustParse("10110")
	assert.Equal(t, 3, bs.Count())

	for i := 0; i < bs.Len(); i++ {
		bs.Flip(i)
	}
	assert.Equal(t, "01001", bs.String())
	assert.Equal(t, 2, bs.Count())
}

func TestCloneIsIndependent(t *testing.T) {
	orig := MustParse("1010")
	cp := orig.Clone()
	cp.Flip(0)

	assert.Equal(t, "1010", orig.String(), "original changed through clone")
	assert.Equal(t, "0010", cp.String())
}

func TestEqual(t *testing.T) {
	a := MustParse("0110")

	assert.True(t, a.Equal(MustParse("0110")))
	assert.False(t, a.Equal(MustParse("0111")), "different content")
	assert.False(t, a.Equal(MustParse("01100")), "different lengths")
	assert.False(t, a.Equal(nil))
}

var suffixTests = []struct {
	a, b  string
	from  int
	wantA string
	wantB string
}{
	{"11111", "00000", 2, "11000", "00111"},
	{"10101", "01010", 1, "11010", "00101"},
	{"1100", "0011", 4, "1100", "0011"},
}

func TestSwapSuffix(t *testing.T) {
	for _, test := range suffixTests {
		a, b := MustParse(test.a), MustParse(test.b)
		a.SwapSuffix(b, test.from)
		assert.Equal(t, test.wantA, a.String(), "SwapSuffix(%q, %q, %d)", test.a, test.b, test.from)
		assert.Equal(t, test.wantB, b.String(), "SwapSuffix(%q, %q, %d)", test.a, test.b, test.from)
	}
}

func TestSwapAt(t *testing.T) {
	a, b := MustParse("100"), MustParse("011")
	a.SwapAt(b, 0)

	assert.Equal(t, "000", a.String())
	assert.Equal(t, "111", b.String())
}

func TestRandomLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for _, n := range []int{1, 63, 64, 65, 130} {
		bs := Random(n, rng)
		assert.Equal(t, n, bs.Len())
		assert.GreaterOrEqual(t, bs.Count(), 0)
		assert.LessOrEqual(t, bs.Count(), n)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { New(4).Set(4) })
}
