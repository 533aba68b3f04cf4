// Package engine wires together the producer-plan builder, the render
// pipeline, and the song-blueprint assembler into the single top-level
// Generate operation the rest of the system calls.
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/synthline/producer-engine/pkg/blueprint"
	"github.com/synthline/producer-engine/pkg/config"
	"github.com/synthline/producer-engine/pkg/errs"
	"github.com/synthline/producer-engine/pkg/plan"
	"github.com/synthline/producer-engine/pkg/profile"
	"github.com/synthline/producer-engine/pkg/render"
	"github.com/synthline/producer-engine/pkg/wav"
)

// Engine holds process-lifetime configuration and the refiner selected at
// startup.
type Engine struct {
	cfg     config.Config
	refiner plan.Refiner
	log     *logrus.Logger
}

// New constructs an Engine from the given configuration.
func New(cfg config.Config) *Engine {
	return &Engine{
		cfg:     cfg,
		refiner: plan.NewRefiner(cfg.LLMAPIKey, cfg.LLMModel),
		log:     logrus.StandardLogger(),
	}
}

// Response is what Generate returns to a caller: the assembled blueprint
// plus the path the WAV file was written to.
type Response struct {
	Blueprint blueprint.SongBlueprint
	AudioPath string
}

// Generate validates req, builds and refines a ProducerPlan, resolves the
// artist profile(s), renders the audio, writes it atomically to the
// content-addressed output path, and assembles the matching song blueprint.
func (e *Engine) Generate(ctx context.Context, req plan.MusicRequest) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	profiles := resolveProfiles(e.log, req.ArtistInfluences)
	primary := profiles[0]

	artistDefaultTempo := 0.0
	if req.TempoBPM == 0 && len(req.ArtistInfluences) > 0 {
		artistDefaultTempo = float64(profile.AverageTempo(profiles))
	}

	built := plan.Build(&req, artistDefaultTempo)
	refined, err := e.refiner.Refine(ctx, &req, built)
	if err != nil {
		e.log.WithError(err).Warn("producer-plan refinement failed, using deterministic plan")
		refined = built
	}
	cfg := refined.Config

	seed := blueprint.ContentHash(&req, cfg.Mood)
	result := render.Render(cfg, primary, seed)

	trackID := blueprint.TrackID(&req, cfg.Mood)
	audioPath := filepath.Join(e.cfg.AudioDir, fmt.Sprintf("track-%s.wav", trackID))

	if err := wav.WriteStereoFileAtomic(audioPath, result.Left, result.Right); err != nil {
		return Response{}, errs.Filesystem(err, "write rendered track")
	}

	bp := blueprint.Build(&req, cfg)
	bp.Instruments = profile.MergeInstruments(profiles)

	e.log.WithFields(logrus.Fields{
		"track_id": bp.TrackID,
		"artists":  strings.Join(req.ArtistInfluences, ","),
		"tempo":    cfg.TempoBPM,
		"duration": result.DurationSeconds,
	}).Info("rendered track")

	return Response{Blueprint: bp, AudioPath: audioPath}, nil
}

// Instruments returns the set-union of instruments across every artist
// profile that resolved for req, per the artist-merge testable property.
func (e *Engine) Instruments(req plan.MusicRequest) []string {
	profiles := resolveProfiles(e.log, req.ArtistInfluences)
	return profile.MergeInstruments(profiles)
}

func resolveProfiles(log *logrus.Logger, artists []string) []profile.Profile {
	if len(artists) == 0 {
		return []profile.Profile{profile.Lookup(profile.DefaultKey)}
	}
	out := make([]profile.Profile, 0, len(artists))
	for _, a := range artists {
		if !profile.Known(a) {
			log.WithField("artist", a).Warn("unknown artist, substituting default profile")
		}
		out = append(out, profile.Lookup(a))
	}
	return out
}
