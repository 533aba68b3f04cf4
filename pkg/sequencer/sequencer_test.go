package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepSamples_QuarterVsSixteenth(t *testing.T) {
	q := StepSamples(Quarter, 120)
	s := StepSamples(Sixteenth, 120)
	assert.Equal(t, sampleRate*60/120, q)
	assert.Less(t, s, q)
}

func TestScatter_PlacesVoiceAtPatternSteps(t *testing.T) {
	out := make([]float64, 1000)
	pattern := []int{1, 0}
	calls := 0
	Scatter(out, pattern, 100, 0, func() []float64 {
		calls++
		return []float64{1, 1, 1}
	})
	require.Equal(t, 5, calls)
	assert.Equal(t, 1.0, out[0])
	assert.Equal(t, 0.0, out[100])
}

func TestScatter_TruncatesAtBufferEnd(t *testing.T) {
	out := make([]float64, 10)
	pattern := []int{1}
	Scatter(out, pattern, 8, 0, func() []float64 {
		return []float64{1, 1, 1, 1, 1}
	})
	// second placement starts at 8, voice would run to 13, truncated to 10
	assert.Equal(t, 1.0, out[9])
}

func TestScatter_SwingDelaysOddSteps(t *testing.T) {
	out := make([]float64, 1000)
	pattern := []int{1, 1}
	var starts []int
	Scatter(out, pattern, 100, 0.5, func() []float64 {
		return []float64{1}
	})
	for i, v := range out {
		if v != 0 {
			starts = append(starts, i)
		}
	}
	require.Len(t, starts, 10)
	assert.Equal(t, 0, starts[0])
	assert.Equal(t, 125, starts[1]) // step 1 delayed by 0.5*100/2=25
}

func TestScatter_MultipleVoicesMixByAddition(t *testing.T) {
	out := make([]float64, 10)
	Scatter(out, []int{1}, 1, 0, func() []float64 { return []float64{1, 1} })
	// every step hits and each two-sample voice overlaps the next step's
	// placement, so every sample after the first sums two placements
	assert.Greater(t, out[0], 0.0)
	assert.Equal(t, 2.0, out[1])
}
