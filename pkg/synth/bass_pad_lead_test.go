package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBassMoog_FillsTotalDuration(t *testing.T) {
	progression := []float64{110, 130, 98, 110}
	buf := BassMoog(progression, 120, 2.0)
	require.Len(t, buf, numSamples(2.0))
}

func TestBassSequenced_FillsTotalDuration(t *testing.T) {
	progression := []float64{110, 130, 98, 110}
	buf := BassSequenced(progression, 120, 1.0)
	require.Len(t, buf, numSamples(1.0))
}

func TestBassDriving_FillsTotalDuration(t *testing.T) {
	progression := []float64{110}
	buf := BassDriving(progression, 120, 1.0)
	require.Len(t, buf, numSamples(1.0))
}

func TestBassSynth_DecaysAcrossBar(t *testing.T) {
	progression := []float64{110}
	buf := BassSynth(progression, 120, 2.0)
	require.NotEmpty(t, buf)

	// 2s at 120 bpm is exactly one bar: compare the peak of the first and
	// last 0.1s, where the linear decay is near 1 and near 0.6.
	window := numSamples(0.1)
	early, late := 0.0, 0.0
	for _, v := range buf[:window] {
		if abs(v) > early {
			early = abs(v)
		}
	}
	for _, v := range buf[len(buf)-window:] {
		if abs(v) > late {
			late = abs(v)
		}
	}
	assert.Greater(t, early, late)
}

func TestPadDarkAnalog_FillsTotalDuration(t *testing.T) {
	chords := [][]float64{{110, 130, 165}}
	buf := PadDarkAnalog(chords, 120, 1.0)
	require.Len(t, buf, numSamples(1.0))
}

func TestPadCleanSine_NonZero(t *testing.T) {
	chords := [][]float64{{220, 277, 330}}
	buf := PadCleanSine(chords, 100, 1.0)
	nonZero := false
	for _, v := range buf {
		if v != 0 {
			nonZero = true
			break
		}
	}
	assert.True(t, nonZero)
}

func TestLead_FollowsPatternLength(t *testing.T) {
	scale := []float64{220, 246, 261, 293, 329, 349, 392, 440}
	buf := Lead(scale, 120, 2.0)
	require.Len(t, buf, numSamples(2.0))
}

func TestArpeggio_FillsTotalDuration(t *testing.T) {
	scale := []float64{220, 246, 261, 293, 329, 349, 392, 440}
	pattern := []int{0, 2, 4, 2}
	buf := Arpeggio(pattern, scale, 120, 2.0)
	require.Len(t, buf, numSamples(2.0))
}
