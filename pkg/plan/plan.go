package plan

import (
	"fmt"
	"strings"
)

// Config is the structured parameter set the render pipeline consumes.
type Config struct {
	TempoBPM      float64
	Key           string
	ArtistStyle   string
	EnergyCurve   string
	Structure     []string
	DrumProfile   string
	GuitarProfile string
	SynthProfile  string
	Mood          string
}

// ProducerPlan is the result of interpreting a MusicRequest: a structured
// Config plus a human-readable summary built up rule-by-rule.
type ProducerPlan struct {
	Config  Config
	Summary string
}

// rule is one (predicate, mutator) pair in the ordered rule list. A rule
// reads req and the plan built so far, and may mutate cfg and append one
// line to summary lines. Rules run in list order; later rules override
// earlier ones on conflicting fields.
type rule struct {
	name    string
	applies func(req *MusicRequest, cfg *Config) bool
	apply   func(req *MusicRequest, cfg *Config) string
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func anyContains(haystack string, needles ...string) bool {
	for _, n := range needles {
		if contains(haystack, n) {
			return true
		}
	}
	return false
}

func artistMentioned(req *MusicRequest, lowerText string, name string) bool {
	if contains(lowerText, name) {
		return true
	}
	for _, a := range req.ArtistInfluences {
		if strings.Contains(strings.ToLower(a), name) {
			return true
		}
	}
	return false
}

// Build runs the full ordered rule set from the producer-plan builder and
// returns the resulting ProducerPlan. The result depends only on req and
// artistDefaultTempo; req is normalized in place first.
// artistDefaultTempo, when non-zero, seeds the default tempo (ordinarily
// 100) from the artist registry's averaged tempo range per §4.5, before any
// keyword or per-artist rule in the list below has a chance to override it.
func Build(req *MusicRequest, artistDefaultTempo float64) ProducerPlan {
	req.Normalize()

	cfg := Config{
		TempoBPM:    100,
		Key:         "C minor",
		ArtistStyle: "generic",
		EnergyCurve: "medium",
		Structure:   []string{"intro", "verse", "chorus", "verse", "chorus", "outro"},
		DrumProfile: "generic",
		Mood:        "neutral",
	}
	if artistDefaultTempo != 0 {
		cfg.TempoBPM = artistDefaultTempo
	}
	if req.TempoBPM != 0 {
		cfg.TempoBPM = req.TempoBPM
	}
	if req.ArtistStyle != "" {
		cfg.ArtistStyle = req.ArtistStyle
	}
	if req.Mood != "" {
		cfg.Mood = req.Mood
	}

	var lines []string
	for _, r := range rules {
		if r.applies(req, &cfg) {
			if line := r.apply(req, &cfg); line != "" {
				lines = append(lines, line)
			}
		}
	}

	summary := fmt.Sprintf("tempo %.0f bpm in %s", cfg.TempoBPM, cfg.Key) + "\n" + strings.Join(lines, "\n")
	return ProducerPlan{Config: cfg, Summary: summary}
}

// rules is the ordered (predicate, mutator) list from §4.6. Order is
// significant: later rules override earlier field writes.
var rules = []rule{
	{
		name:    "slow_keywords",
		applies: func(req *MusicRequest, cfg *Config) bool { return anyContains(strings.ToLower(req.InfluenceText), "slow", "ballad", "intimate", "soft") },
		apply: func(req *MusicRequest, cfg *Config) string {
			if cfg.TempoBPM > 85 {
				cfg.TempoBPM = 85
			}
			cfg.EnergyCurve = "slow_build"
			return "leaning slow and intimate, tempo capped at 85"
		},
	},
	{
		name:    "fast_keywords",
		applies: func(req *MusicRequest, cfg *Config) bool { return anyContains(strings.ToLower(req.InfluenceText), "fast", "energetic", "aggressive", "intense", "hype") },
		apply: func(req *MusicRequest, cfg *Config) string {
			if cfg.TempoBPM < 125 {
				cfg.TempoBPM = 125
			}
			cfg.EnergyCurve = "high"
			return "high energy cue detected, tempo floored at 125"
		},
	},
	{
		name: "tiktok_shorts",
		applies: func(req *MusicRequest, cfg *Config) bool {
			lower := strings.ToLower(req.InfluenceText)
			return anyContains(lower, "tiktok", "shorts", "viral") ||
				req.UsageContext == string(UsageTikTok) || req.UsageContext == string(UsageShorts)
		},
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.Structure = []string{"intro", "hook", "drop", "chorus"}
			cfg.EnergyCurve = "hook_first"
			if cfg.TempoBPM < 110 {
				cfg.TempoBPM = 110
			}
			return "short-form usage, hook-first structure at 110+ bpm"
		},
	},
	{
		name:    "dark_keywords",
		applies: func(req *MusicRequest, cfg *Config) bool { return anyContains(strings.ToLower(req.InfluenceText), "dark", "emotional", "moody", "heavy") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.Key = "D minor"
			cfg.Mood = "dark"
			return "dark/moody tone, key set to D minor"
		},
	},
	{
		name:    "bright_keywords",
		applies: func(req *MusicRequest, cfg *Config) bool { return anyContains(strings.ToLower(req.InfluenceText), "bright", "uplifting", "hopeful", "happy") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.Key = "F major"
			cfg.Mood = "uplifting"
			return "bright/uplifting tone, key set to F major"
		},
	},
	{
		name:    "linkin_park",
		applies: func(req *MusicRequest, cfg *Config) bool { return artistMentioned(req, strings.ToLower(req.InfluenceText), "linkin park") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.ArtistStyle = "linkin_park"
			cfg.GuitarProfile = "lp_heavy_guitars"
			cfg.DrumProfile = "lp_rock_drums"
			if req.TempoBPM == 0 {
				cfg.TempoBPM = 95
			}
			cfg.Key = "D minor"
			return "Linkin Park influence, heavy guitars and rock drums"
		},
	},
	{
		name:    "eminem",
		applies: func(req *MusicRequest, cfg *Config) bool { return artistMentioned(req, strings.ToLower(req.InfluenceText), "eminem") },
		apply: func(req *MusicRequest, cfg *Config) string {
			if cfg.ArtistStyle == "linkin_park" {
				cfg.ArtistStyle = "linkin_park_eminem_hybrid"
			} else {
				cfg.ArtistStyle = "eminem"
			}
			cfg.DrumProfile = "eminem_bounce"
			if req.TempoBPM == 0 {
				cfg.TempoBPM = 92
			}
			return "Eminem influence, bounce drum profile"
		},
	},
	{
		name:    "depeche_mode",
		applies: func(req *MusicRequest, cfg *Config) bool { return artistMentioned(req, strings.ToLower(req.InfluenceText), "depeche mode") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.ArtistStyle = "depeche_mode"
			cfg.Mood = "dark"
			cfg.Key = "A minor"
			return "Depeche Mode influence"
		},
	},
	{
		name:    "gary_numan",
		applies: func(req *MusicRequest, cfg *Config) bool { return artistMentioned(req, strings.ToLower(req.InfluenceText), "gary numan") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.ArtistStyle = "gary_numan"
			cfg.Mood = "dark"
			cfg.Key = "G minor"
			return "Gary Numan influence"
		},
	},
	{
		name:    "kraftwerk",
		applies: func(req *MusicRequest, cfg *Config) bool { return artistMentioned(req, strings.ToLower(req.InfluenceText), "kraftwerk") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.ArtistStyle = "kraftwerk"
			cfg.Mood = "mechanical"
			cfg.Key = "C major"
			return "Kraftwerk influence"
		},
	},
	{
		name:    "pet_shop_boys",
		applies: func(req *MusicRequest, cfg *Config) bool { return artistMentioned(req, strings.ToLower(req.InfluenceText), "pet shop boys") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.ArtistStyle = "pet_shop_boys"
			cfg.Mood = "uplifting"
			cfg.Key = "D major"
			return "Pet Shop Boys influence"
		},
	},
	{
		name:    "usage_background",
		applies: func(req *MusicRequest, cfg *Config) bool { return req.UsageContext == string(UsageBackground) },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.EnergyCurve = "steady"
			cfg.Structure = []string{"loop"}
			if cfg.TempoBPM > 100 {
				cfg.TempoBPM = 100
			}
			return "background usage, steady single-loop structure"
		},
	},
	{
		name: "usage_longform",
		applies: func(req *MusicRequest, cfg *Config) bool {
			return req.UsageContext == string(UsageLongform) || req.UsageContext == string(UsageFullSong)
		},
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.Structure = []string{"intro", "verse", "chorus", "verse", "bridge", "chorus", "outro"}
			cfg.EnergyCurve = "dynamic"
			return "full-song usage, complete verse/chorus/bridge structure"
		},
	},
	{
		name:    "guitar_mentions",
		applies: func(req *MusicRequest, cfg *Config) bool { return anyContains(strings.ToLower(req.InfluenceText), "guitar", "riff", "rock", "metal") },
		apply: func(req *MusicRequest, cfg *Config) string {
			if cfg.GuitarProfile == "" {
				cfg.GuitarProfile = "live_guitars"
				return "guitar-oriented instrumentation requested"
			}
			return ""
		},
	},
	{
		name:    "synth_mentions",
		applies: func(req *MusicRequest, cfg *Config) bool { return anyContains(strings.ToLower(req.InfluenceText), "synth", "electronic", "digital") },
		apply: func(req *MusicRequest, cfg *Config) string {
			cfg.GuitarProfile = ""
			cfg.SynthProfile = "prominent_digital"
			return "synth-oriented instrumentation requested"
		},
	},
}
