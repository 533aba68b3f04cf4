// Package external declares the interfaces the engine consumes from
// out-of-scope collaborators (vocal synthesis, text generation, audio
// post-processing) and provides fakes that stand in for the real services,
// the way the originating system's fake engines did. The fake URLs carry a
// random UUID, so they differ from call to call.
package external

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// VocalRequest is the minimal input the vocal synthesis collaborator needs.
type VocalRequest struct {
	Lyrics   string
	Style    string
	TempoBPM float64
}

// VocalResult is what the vocal collaborator returns: a URL to the rendered
// audio and its estimated duration.
type VocalResult struct {
	AudioURL        string
	DurationSeconds float64
}

// VocalEngine synthesises vocals for a set of lyrics; out of scope for this
// engine's own correctness, delegated to an external TTS service.
type VocalEngine interface {
	Generate(ctx context.Context, req VocalRequest) (VocalResult, error)
}

// FakeVocalEngine returns a fake URL named by a random UUID and a duration
// estimated from word count and tempo, clamped to [30, 240] seconds — the
// same estimate shape the reference vocal stub used.
type FakeVocalEngine struct{}

func (FakeVocalEngine) Generate(_ context.Context, req VocalRequest) (VocalResult, error) {
	id := uuid.New().String()
	words := len(strings.Fields(req.Lyrics))
	seconds := estimateDuration(words, req.TempoBPM)
	return VocalResult{
		AudioURL:        fmt.Sprintf("static/audio/vocals/%s.mp3", id),
		DurationSeconds: seconds,
	}, nil
}

// estimateDuration assumes roughly 2.5 words sung per second at 120 bpm,
// scaling linearly with tempo, clamped to a plausible vocal-take range.
func estimateDuration(words int, tempoBPM float64) float64 {
	if tempoBPM <= 0 {
		tempoBPM = 100
	}
	seconds := float64(words) / (tempoBPM / 120 * 2.5)
	if seconds < 30 {
		seconds = 30
	}
	if seconds > 240 {
		seconds = 240
	}
	return seconds
}

// TextGenerator is an opaque string-in/string-out collaborator standing in
// for the out-of-scope blog/newsletter/post/outline/campaign/virality
// endpoints: every one of them is a pure text transform we don't implement.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FakeTextGenerator echoes a templated stub response; callers needing real
// copy use an out-of-scope text-generation service.
type FakeTextGenerator struct{}

func (FakeTextGenerator) Generate(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf("[generated copy for: %s]", prompt), nil
}

// AudioProcessor is the out-of-scope audio/video post-processing
// collaborator (cleanup, pitch shift, tempo shift, extraction); each
// operation here is a stub that returns a fake URL.
type AudioProcessor interface {
	CleanupAudio(ctx context.Context, sourceURL string) (string, error)
	PitchShift(ctx context.Context, sourceURL string, semitones int) (string, error)
	TempoShift(ctx context.Context, sourceURL string, factor float64) (string, error)
	ExtractAudio(ctx context.Context, sourceVideoURL string) (string, error)
}

// FakeAudioProcessor returns plausible fake URLs for each operation, built
// from an operation suffix, a random UUID and the source URL, without doing
// any real signal processing.
type FakeAudioProcessor struct{}

func (FakeAudioProcessor) CleanupAudio(_ context.Context, sourceURL string) (string, error) {
	return fakeDerivedURL(sourceURL, "clean"), nil
}

func (FakeAudioProcessor) PitchShift(_ context.Context, sourceURL string, semitones int) (string, error) {
	if semitones < -12 || semitones > 12 {
		semitones = clampSemitones(semitones)
	}
	return fakeDerivedURL(sourceURL, fmt.Sprintf("pitch%+d", semitones)), nil
}

func (FakeAudioProcessor) TempoShift(_ context.Context, sourceURL string, factor float64) (string, error) {
	return fakeDerivedURL(sourceURL, fmt.Sprintf("tempo%.2f", factor)), nil
}

func (FakeAudioProcessor) ExtractAudio(_ context.Context, sourceVideoURL string) (string, error) {
	return fakeDerivedURL(sourceVideoURL, "extracted"), nil
}

func clampSemitones(s int) int {
	if s < -12 {
		return -12
	}
	if s > 12 {
		return 12
	}
	return s
}

func fakeDerivedURL(sourceURL, suffix string) string {
	id := uuid.New().String()
	return fmt.Sprintf("static/audio/processed/%s-%s-%s.wav", suffix, id, strings.TrimSuffix(sourceURL, ".wav"))
}
