package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthline/producer-engine/pkg/plan"
	"github.com/synthline/producer-engine/pkg/profile"
)

func testConfig() plan.Config {
	return plan.Config{
		TempoBPM:  120,
		Key:       "C minor",
		Structure: []string{"intro", "verse"},
	}
}

func TestRender_Deterministic(t *testing.T) {
	cfg := testConfig()
	prof := profile.Lookup("depeche_mode")
	seed := []byte("same-seed")

	a := Render(cfg, prof, seed)
	b := Render(cfg, prof, seed)

	require.Equal(t, len(a.Left), len(b.Left))
	for i := range a.Left {
		assert.Equal(t, a.Left[i], b.Left[i])
		assert.Equal(t, a.Right[i], b.Right[i])
	}
}

func TestRender_DurationCappedAtSixtySeconds(t *testing.T) {
	cfg := plan.Config{
		TempoBPM:  60,
		Key:       "C minor",
		Structure: []string{"loop", "loop", "loop", "loop", "loop"},
	}
	prof := profile.Lookup("kraftwerk")
	result := Render(cfg, prof, []byte("seed"))
	assert.LessOrEqual(t, result.DurationSeconds, 60.0)
}

func TestRender_PeakNeverExceedsHeadroom(t *testing.T) {
	cfg := testConfig()
	prof := profile.Lookup("pet_shop_boys")
	result := Render(cfg, prof, []byte("peak-seed"))

	// Left is the normalised mono mix. Right adds the delayed pad copy on
	// top of that mix, so it may rise above 0.85 but stays within full scale.
	peak := 0.0
	for _, v := range result.Left {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	assert.LessOrEqual(t, peak, 0.85+1e-6)

	peakRight := 0.0
	for _, v := range result.Right {
		if a := math.Abs(v); a > peakRight {
			peakRight = a
		}
	}
	assert.LessOrEqual(t, peakRight, 1.0)
}

func TestRender_DifferentSeedsDiffer(t *testing.T) {
	cfg := testConfig()
	prof := profile.Lookup("gary_numan")
	a := Render(cfg, prof, []byte("seed-one"))
	b := Render(cfg, prof, []byte("seed-two"))

	differs := false
	for i := range a.Left {
		if a.Left[i] != b.Left[i] {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestNormalise_Idempotent(t *testing.T) {
	x := []float64{0.1, -0.9, 0.5, 0, 0.2}
	once := normalise(x, 0.85)
	twice := normalise(once, 0.85)
	for i := range once {
		assert.InDelta(t, once[i], twice[i], 1e-9)
	}
}

func TestNormalise_SilentBufferStaysSilent(t *testing.T) {
	x := make([]float64, 10)
	out := normalise(x, 0.85)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestBoxAverage_MatchesLengthOfInput(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1}
	out := boxAverage(x, 2)
	require.Len(t, out, len(x))
}
