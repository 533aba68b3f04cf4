package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthline/producer-engine/pkg/config"
	"github.com/synthline/producer-engine/pkg/errs"
	"github.com/synthline/producer-engine/pkg/plan"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Config{AudioDir: t.TempDir(), LLMModel: "gpt-4o-mini"}
	return New(cfg)
}

func TestGenerate_RejectsInvalidRequest(t *testing.T) {
	e := testEngine(t)
	_, err := e.Generate(context.Background(), plan.MusicRequest{})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindValidation))
}

func TestGenerate_WritesFileAtBlueprintTrackID(t *testing.T) {
	e := testEngine(t)
	req := plan.MusicRequest{ArtistInfluences: []string{"Depeche Mode"}, Mood: "dark"}

	resp, err := e.Generate(context.Background(), req)
	require.NoError(t, err)

	wantPath := filepath.Join(e.cfg.AudioDir, "track-"+resp.Blueprint.TrackID+".wav")
	assert.Equal(t, wantPath, resp.AudioPath)
}

func TestGenerate_UnknownArtistFallsBackToDefaultProfile(t *testing.T) {
	e := testEngine(t)
	req := plan.MusicRequest{ArtistInfluences: []string{"Unknown Band"}}

	resp, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Blueprint.Instruments)
}

func TestGenerate_MultiArtistInstrumentUnion(t *testing.T) {
	e := testEngine(t)
	req := plan.MusicRequest{ArtistInfluences: []string{"Depeche Mode", "Gary Numan"}}

	resp, err := e.Generate(context.Background(), req)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, inst := range resp.Blueprint.Instruments {
		seen[inst]++
	}
	for inst, count := range seen {
		assert.Equal(t, 1, count, "instrument %s should appear once in the union", inst)
	}
}

func TestInstruments_MatchesGenerateInstrumentUnion(t *testing.T) {
	e := testEngine(t)
	req := plan.MusicRequest{ArtistInfluences: []string{"Kraftwerk"}}

	got := e.Instruments(req)
	assert.NotEmpty(t, got)

	resp, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, resp.Blueprint.Instruments, got)
}

func TestGenerate_DeterministicAcrossCalls(t *testing.T) {
	e := testEngine(t)
	req := plan.MusicRequest{ArtistInfluences: []string{"Yazoo"}, Mood: "warm"}

	a, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	b, err := e.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a.Blueprint.TrackID, b.Blueprint.TrackID)
	assert.Equal(t, a.AudioPath, b.AudioPath)
}
