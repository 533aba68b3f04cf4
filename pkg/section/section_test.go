package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownSectionsHaveExpectedBars(t *testing.T) {
	assert.Equal(t, 4, Lookup("intro").Bars)
	assert.Equal(t, 8, Lookup("verse").Bars)
	assert.Equal(t, 8, Lookup("chorus").Bars)
	assert.Equal(t, 16, Lookup("loop").Bars)
	assert.Equal(t, 8, Lookup("hook").Bars)
}

func TestLookup_UnknownDefaultsToVerseLike(t *testing.T) {
	s := Lookup("nonexistent_section")
	assert.Equal(t, 8, s.Bars)
	assert.Contains(t, s.Instruments, Drums)
	assert.Contains(t, s.Instruments, Bass)
	assert.Contains(t, s.Instruments, Pad)
}

func TestGain_LightVariantsAttenuated(t *testing.T) {
	assert.Equal(t, 0.5, Gain(LightDrums))
	assert.Equal(t, 0.6, Gain(LightLead))
	assert.Equal(t, 1.0, Gain(Drums))
	assert.Equal(t, 1.0, Gain(Bass))
}

func TestHas_MatchesLightVariant(t *testing.T) {
	spec := Lookup("intro") // Pad, LightDrums
	inst, ok := Has(spec, Drums)
	assert.True(t, ok)
	assert.Equal(t, LightDrums, inst)

	_, ok = Has(spec, Lead)
	assert.False(t, ok)
}

func TestHas_MatchesExactInstrument(t *testing.T) {
	spec := Lookup("chorus") // Drums, Bass, Pad, Lead
	inst, ok := Has(spec, Lead)
	assert.True(t, ok)
	assert.Equal(t, Lead, inst)
}
