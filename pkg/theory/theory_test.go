package theory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleDegrees_KnownScales(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, ScaleDegrees(Major))
	assert.Equal(t, []int{0, 2, 3, 5, 7, 9, 10}, ScaleDegrees(Dorian))
	assert.Equal(t, []int{0, 2, 3, 5, 7, 8, 10}, ScaleDegrees(NaturalMinor))
	assert.Equal(t, []int{0, 2, 3, 5, 7, 8, 10}, ScaleDegrees("unknown"))
}

func TestRootFromKey_KnownLetters(t *testing.T) {
	root, scale := RootFromKey("D minor")
	assert.Equal(t, 293.66, root)
	assert.Equal(t, NaturalMinor, scale)

	root, scale = RootFromKey("F major")
	assert.Equal(t, 349.23, root)
	assert.Equal(t, Major, scale)
}

func TestRootFromKey_DefaultsToA220(t *testing.T) {
	root, scale := RootFromKey("Z minor")
	assert.Equal(t, 220.0, root)
	assert.Equal(t, NaturalMinor, scale)
}

func TestRomanToTriad_WrapsOctaves(t *testing.T) {
	scale := ScaleDegrees(NaturalMinor)
	triad := RomanToTriad("vi", scale)
	require.True(t, triad[0] <= triad[1])
	require.True(t, triad[1] <= triad[2])
}

func TestIsMinorQuality(t *testing.T) {
	assert.True(t, IsMinorQuality("i"))
	assert.False(t, IsMinorQuality("I"))
}

func TestChordProgressionRoot_Default(t *testing.T) {
	scale := ScaleDegrees(NaturalMinor)
	prog := ChordProgressionRoot(scale)
	assert.Equal(t, [4]int{scale[0], scale[3], scale[1], scale[0]}, prog)
}

func TestDegreeToFrequency_OctaveDoublesFrequency(t *testing.T) {
	freq := DegreeToFrequency(220.0, 12)
	assert.True(t, math.Abs(freq-440.0) < 1e-9)
}
