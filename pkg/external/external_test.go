package external

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeVocalEngine_ClampsDurationRange(t *testing.T) {
	e := FakeVocalEngine{}

	short, err := e.Generate(context.Background(), VocalRequest{Lyrics: "one", TempoBPM: 200})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, short.DurationSeconds, 30.0)

	longLyrics := ""
	for i := 0; i < 500; i++ {
		longLyrics += "word "
	}
	long, err := e.Generate(context.Background(), VocalRequest{Lyrics: longLyrics, TempoBPM: 60})
	require.NoError(t, err)
	assert.LessOrEqual(t, long.DurationSeconds, 240.0)
}

func TestFakeVocalEngine_ZeroTempoDefaultsSafely(t *testing.T) {
	e := FakeVocalEngine{}
	res, err := e.Generate(context.Background(), VocalRequest{Lyrics: "hello world", TempoBPM: 0})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.DurationSeconds, 30.0)
}

func TestFakeAudioProcessor_PitchShiftClampsSemitones(t *testing.T) {
	p := FakeAudioProcessor{}
	url, err := p.PitchShift(context.Background(), "track.wav", 50)
	require.NoError(t, err)
	assert.Contains(t, url, "pitch+12")

	url, err = p.PitchShift(context.Background(), "track.wav", -50)
	require.NoError(t, err)
	assert.Contains(t, url, "pitch-12")
}

func TestFakeTextGenerator_EchoesPrompt(t *testing.T) {
	g := FakeTextGenerator{}
	out, err := g.Generate(context.Background(), "a tiktok caption")
	require.NoError(t, err)
	assert.Contains(t, out, "a tiktok caption")
}
