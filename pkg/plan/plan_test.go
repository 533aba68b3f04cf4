package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	req := &MusicRequest{Mood: "neutral"}
	p := Build(req, 0)
	assert.Equal(t, 100.0, p.Config.TempoBPM)
	assert.Equal(t, "C minor", p.Config.Key)
	assert.Equal(t, []string{"intro", "verse", "chorus", "verse", "chorus", "outro"}, p.Config.Structure)
}

func TestBuild_TikTokFloorsWinsOverSlowCap(t *testing.T) {
	req := &MusicRequest{InfluenceText: "slow emotional tiktok hook", UsageContext: "tiktok"}
	p := Build(req, 0)
	assert.Equal(t, 110.0, p.Config.TempoBPM)
	assert.Equal(t, []string{"intro", "hook", "drop", "chorus"}, p.Config.Structure)
	assert.Equal(t, "hook_first", p.Config.EnergyCurve)
}

func TestBuild_ArtistDefaultTempoSeedsBeforeRules(t *testing.T) {
	req := &MusicRequest{ArtistInfluences: []string{"Kraftwerk"}}
	p := Build(req, 122)
	assert.Equal(t, 122.0, p.Config.TempoBPM)
}

func TestBuild_ExplicitTempoWins(t *testing.T) {
	req := &MusicRequest{TempoBPM: 140}
	p := Build(req, 90)
	assert.Equal(t, 140.0, p.Config.TempoBPM)
}

func TestBuild_LinkinParkEminemHybrid(t *testing.T) {
	req := &MusicRequest{InfluenceText: "linkin park and eminem collab"}
	p := Build(req, 0)
	assert.Equal(t, "linkin_park_eminem_hybrid", p.Config.ArtistStyle)
	assert.Equal(t, "eminem_bounce", p.Config.DrumProfile)
}

func TestBuild_SynthMentionClearsGuitarProfile(t *testing.T) {
	req := &MusicRequest{InfluenceText: "guitar riff but make it synth and electronic"}
	p := Build(req, 0)
	assert.Empty(t, p.Config.GuitarProfile)
	assert.Equal(t, "prominent_digital", p.Config.SynthProfile)
}

func TestValidate_RejectsOutOfRangeTempo(t *testing.T) {
	req := &MusicRequest{ArtistInfluences: []string{"Kraftwerk"}, TempoBPM: 300}
	err := req.Validate()
	require.Error(t, err)
}

func TestValidate_RequiresArtistsOrMood(t *testing.T) {
	req := &MusicRequest{}
	err := req.Validate()
	require.Error(t, err)
}

func TestNormalize_AliasesInfluenceArtists(t *testing.T) {
	req := &MusicRequest{InfluenceArtists: []string{"Yazoo"}}
	req.Normalize()
	assert.Equal(t, []string{"Yazoo"}, req.ArtistInfluences)
}

func TestDeterministicRefiner_IdempotentOnRefinedPlan(t *testing.T) {
	req := &MusicRequest{InfluenceText: "massive epic drop buildup"}
	built := Build(req, 0)
	refiner := DeterministicRefiner{}

	once, err := refiner.Refine(nil, req, built)
	require.NoError(t, err)
	twice, err := refiner.Refine(nil, req, once)
	require.NoError(t, err)

	assert.Equal(t, once.Config, twice.Config)
}

func TestDeterministicRefiner_InsertsBuildSection(t *testing.T) {
	req := &MusicRequest{InfluenceText: "big buildup into the drop", UsageContext: "full_song"}
	built := Build(req, 0)
	refiner := DeterministicRefiner{}
	refined, err := refiner.Refine(nil, req, built)
	require.NoError(t, err)

	found := false
	for _, s := range refined.Config.Structure {
		if s == "build" {
			found = true
		}
	}
	assert.True(t, found)
}
