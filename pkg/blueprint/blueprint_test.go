package blueprint

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthline/producer-engine/pkg/plan"
)

func TestTrackID_MatchesLiteralFormula(t *testing.T) {
	req := &plan.MusicRequest{ArtistInfluences: []string{"Depeche_Mode"}}
	req.Normalize()

	got := TrackID(req, "dark")

	sum := md5.Sum([]byte("Depeche_Mode_dark_"))
	want := hex.EncodeToString(sum[:])[:12]
	assert.Equal(t, want, got)
}

func TestTrackID_SameAsBuildsTrackID(t *testing.T) {
	req := &plan.MusicRequest{ArtistInfluences: []string{"Kraftwerk"}, ReferenceText: "autobahn"}
	cfg := plan.Config{Mood: "mechanical", TempoBPM: 120}

	bp := Build(req, cfg)
	assert.Equal(t, TrackID(req, cfg.Mood), bp.TrackID)
}

func TestBuild_DefaultsToSevenSections(t *testing.T) {
	req := &plan.MusicRequest{ArtistInfluences: []string{"Yazoo"}}
	cfg := plan.Config{Mood: "neutral"}
	bp := Build(req, cfg)
	require.Len(t, bp.Sections, 7)
}

func TestBuild_RespectsExplicitSections(t *testing.T) {
	req := &plan.MusicRequest{ArtistInfluences: []string{"Yazoo"}, Sections: []string{"intro", "hook", "drop", "chorus"}}
	cfg := plan.Config{Mood: "neutral"}
	bp := Build(req, cfg)
	require.Len(t, bp.Sections, 4)
	assert.Equal(t, "hook", bp.Sections[1].Name)
	assert.Equal(t, 16, bp.Sections[1].Bars) // hook classified as chorus
}

func TestBuild_DeterministicAcrossCalls(t *testing.T) {
	req := &plan.MusicRequest{ArtistInfluences: []string{"Pet Shop Boys"}, ReferenceText: "glass city lights"}
	cfg := plan.Config{Mood: "uplifting", TempoBPM: 118}

	a := Build(req, cfg)
	b := Build(req, cfg)
	assert.Equal(t, a, b)
}

func TestBuild_VocalStyleFallsBackForUnknownArtist(t *testing.T) {
	req := &plan.MusicRequest{ArtistInfluences: []string{"Some Random Band"}}
	cfg := plan.Config{Mood: "dark"}
	bp := Build(req, cfg)
	assert.NotEmpty(t, bp.VocalStyle.Gender)
}
