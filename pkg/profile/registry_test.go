package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitiveWithThePrefix(t *testing.T) {
	p1 := Lookup("Depeche Mode")
	p2 := Lookup("the depeche mode")
	p3 := Lookup("DEPECHE MODE")
	assert.Equal(t, p1.Key, p2.Key)
	assert.Equal(t, p1.Key, p3.Key)
	assert.Equal(t, "depeche_mode", p1.Key)
}

func TestLookup_UnknownFallsBackToDepecheMode(t *testing.T) {
	p := Lookup("Unknown Band")
	require.Equal(t, DefaultKey, p.Key)
	assert.True(t, p.UseSidechain)
	assert.True(t, p.UseGatedReverb)
}

func TestKnown_DistinguishesFallbackFromHit(t *testing.T) {
	assert.True(t, Known("Kraftwerk"))
	assert.False(t, Known("Some Random Band"))
}

func TestAllTenRegistryArtistsResolve(t *testing.T) {
	names := []string{
		"depeche_mode", "gary_numan", "kraftwerk", "pet_shop_boys",
		"new_order", "human_league", "omd", "tears_for_fears",
		"eurythmics", "yazoo",
	}
	for _, name := range names {
		p := Lookup(name)
		assert.Equal(t, name, p.Key, "lookup for %s should resolve to itself, not the fallback", name)
		assert.NotEmpty(t, p.Instruments)
		assert.Len(t, p.GrooveTemplates[0].Kick, 16)
	}
}

func TestMergeInstruments_UnionsWithoutDuplicates(t *testing.T) {
	a := Lookup("depeche_mode")
	b := Lookup("gary_numan")
	merged := MergeInstruments([]Profile{a, b})

	seen := map[string]int{}
	for _, inst := range merged {
		seen[inst]++
	}
	for inst, count := range seen {
		assert.Equal(t, 1, count, "instrument %s should appear once", inst)
	}
}

func TestAverageTempo_IsMidpointOfAveragedRanges(t *testing.T) {
	a := Lookup("depeche_mode") // 105-128
	b := Lookup("kraftwerk")    // 115-130
	got := AverageTempo([]Profile{a, b})

	avgMin := (105.0 + 115.0) / 2
	avgMax := (128.0 + 130.0) / 2
	want := int((avgMin + avgMax) / 2)
	assert.Equal(t, want, got)
}

func TestGrooveTemplates_ValuesAreBinary(t *testing.T) {
	for _, p := range registry {
		for _, g := range p.GrooveTemplates {
			for _, steps := range [][16]int{g.Kick, g.Snare, g.HihatClosed, g.HihatOpen} {
				for _, v := range steps {
					assert.True(t, v == 0 || v == 1)
				}
			}
			assert.GreaterOrEqual(t, g.SwingAmount, 0.0)
			assert.LessOrEqual(t, g.SwingAmount, 1.0)
		}
	}
}
