package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestADSR_ExactLength(t *testing.T) {
	env := ADSR(0.01, 0.02, 0.5, 0.03, 4410)
	require.Len(t, env, 4410)
}

func TestADSR_AttackRampsToOne(t *testing.T) {
	attackSamples := numSamples(0.01)
	env := ADSR(0.01, 0.02, 0.5, 0.03, 44100)
	assert.InDelta(t, 0, env[0], 1e-9)
	assert.InDelta(t, 1.0, env[attackSamples-1], 0.01)
}

func TestADSR_OverflowEdgeCase(t *testing.T) {
	// attack+decay+release exceeds totalSamples: attack runs to its own
	// length, then decay, then a linear ramp to zero fills the remainder.
	// 44 attack + 44 decay samples leave 112 for the ramp (release alone
	// would need 4410).
	env := ADSR(0.001, 0.001, 0.5, 0.1, 200)
	require.Len(t, env, 200)
	assert.Equal(t, 0.0, env[len(env)-1])
}

func TestApplyEnvelope_TruncatesToShorter(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1}
	env := []float64{0.5, 0.5, 0.5}
	out := ApplyEnvelope(x, env)
	require.Len(t, out, 5)
	assert.Equal(t, 0.5, out[0])
	assert.Equal(t, 0.0, out[4])
}
