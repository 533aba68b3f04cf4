package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroNoise struct{}

func (zeroNoise) Float64() float64 { return 0 }

func TestKick808_Duration(t *testing.T) {
	buf := Kick808(zeroNoise{})
	require.Len(t, buf, numSamples(0.4))
}

func TestKick909_Duration(t *testing.T) {
	buf := Kick909(zeroNoise{})
	require.Len(t, buf, numSamples(0.18))
}

func TestKickAcoustic_Duration(t *testing.T) {
	buf := KickAcoustic(zeroNoise{})
	require.Len(t, buf, numSamples(0.22))
}

func TestSnareDurations(t *testing.T) {
	assert.Len(t, Snare808(zeroNoise{}), numSamples(0.15))
	assert.Len(t, Snare909(zeroNoise{}), numSamples(0.12))
	assert.Len(t, SnareAcoustic(zeroNoise{}), numSamples(0.18))
}

func TestHiHat_Duration(t *testing.T) {
	buf := HiHat(zeroNoise{})
	require.Len(t, buf, numSamples(0.06))
}

func TestKick808_DecaysTowardZero(t *testing.T) {
	buf := Kick808(zeroNoise{})
	early := buf[10]
	late := buf[len(buf)-1]
	assert.Greater(t, abs(early), abs(late))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
