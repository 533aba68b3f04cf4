// Package plan implements the producer-plan builder: the rule-based
// interpreter that turns a free-form MusicRequest into a structured
// ProducerPlan the render pipeline consumes, plus an optional LLM
// refinement pass behind a frozen interface.
package plan

import (
	"strings"

	"github.com/synthline/producer-engine/pkg/errs"
)

// UsageContext enumerates the recognised usage_context values.
type UsageContext string

const (
	UsageUnspecified UsageContext = "unspecified"
	UsageTikTok      UsageContext = "tiktok"
	UsageShorts      UsageContext = "shorts"
	UsageBackground  UsageContext = "background"
	UsageFullSong    UsageContext = "full_song"
	UsageLongform    UsageContext = "longform"
)

// MusicRequest is the user-facing input to the producer-plan builder.
//
// ArtistStyle, InfluenceText, InfluenceArtists, UsageContext, and Mood are
// not present on the schema the request type was distilled from; they are
// added here per the documented open question so the rule set in §4.6 has a
// field to read. InfluenceArtists fills ArtistInfluences when the latter is
// unset, so callers that only populate InfluenceArtists still drive the
// artist-hit rules.
type MusicRequest struct {
	ArtistInfluences []string `json:"artist_influences"`
	InfluenceText    string   `json:"influence_text,omitempty"`
	UsageContext     string   `json:"usage_context,omitempty"`
	Mood             string   `json:"mood,omitempty"`
	TempoBPM         float64  `json:"tempo_bpm,omitempty"`
	Instruments      []string `json:"instruments,omitempty"`
	ProductionEra    string   `json:"production_era,omitempty"`
	Sections         []string `json:"sections,omitempty"`
	ReferenceText    string   `json:"reference_text,omitempty"`
	ProjectID        string   `json:"project_id,omitempty"`

	// ArtistStyle, when set, seeds artist_style before the rule set runs
	// instead of requiring it to be derived from ArtistInfluences/InfluenceText.
	ArtistStyle string `json:"artist_style,omitempty"`
	// InfluenceArtists aliases ArtistInfluences for callers that address the
	// field by this name; Normalize folds it into ArtistInfluences.
	InfluenceArtists []string `json:"influence_artists,omitempty"`
}

// Normalize fills ArtistInfluences from InfluenceArtists when the former is
// empty, so downstream code only ever has to read one field.
func (r *MusicRequest) Normalize() {
	if len(r.ArtistInfluences) == 0 && len(r.InfluenceArtists) > 0 {
		r.ArtistInfluences = r.InfluenceArtists
	}
}

// Validate checks the request against the invariants in §3: tempo range
// when supplied, and that at least one of artist_influences or a non-blank
// mood (the legacy fallback) is present.
func (r *MusicRequest) Validate() error {
	r.Normalize()
	if r.TempoBPM != 0 && (r.TempoBPM < 60 || r.TempoBPM > 200) {
		return errs.Validation("tempo_bpm must be in [60, 200]")
	}
	if len(r.ArtistInfluences) == 0 && strings.TrimSpace(r.Mood) == "" {
		return errs.Validation("request must include artist_influences (or a mood as a legacy fallback)")
	}
	return nil
}
