// Package profile holds the static, read-only artist-profile registry: the
// per-artist musical DNA (scale, root, chord progressions, grooves,
// arpeggios, drum machine, bass/synth style, effect toggles) the render
// pipeline consumes. The registry and every table in it are built once at
// package init and never mutated afterward, so concurrent renders can share
// them without synchronization.
package profile

import "strings"

// Drum machine identifiers.
const (
	DrumMachine808  = "808"
	DrumMachine909  = "909"
	DrumMachineLinn = "linn_drum"
)

// Profile is the static musical DNA for one artist.
type Profile struct {
	Key               string
	ScaleName         string
	RootMIDI          int
	TempoRangeMin     int
	TempoRangeMax     int
	ChordProgressions [][4]string
	HarmonicRhythm    string
	GrooveTemplates   []GrooveTemplate
	ArpPatterns       [][]int
	DrumMachine       string
	BassStyle         string
	SynthStyle        string
	UseSidechain      bool
	UseGatedReverb    bool
	Instruments       []string
}

// DefaultKey is the fallback profile used for unknown artists.
const DefaultKey = "depeche_mode"

var registry = map[string]Profile{
	"depeche_mode": {
		Key:           "depeche_mode",
		ScaleName:     "natural_minor",
		RootMIDI:      57,
		TempoRangeMin: 105,
		TempoRangeMax: 128,
		ChordProgressions: [][4]string{
			{"i", "VI", "III", "VII"},
			{"i", "VII", "VI", "VII"},
			{"i", "iv", "VI", "III"},
		},
		HarmonicRhythm: "slow",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1},
				SwingAmount: 0.05,
			},
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1},
				HihatClosed: [16]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
				HihatOpen:   [16]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0},
				SwingAmount: 0.08,
			},
		},
		ArpPatterns: [][]int{
			{0, 2, 4, 7, 4, 2},
			{0, 4, 2, 4, 0, 7},
			{0, 2, 5, 4, 2, 0},
		},
		DrumMachine:    DrumMachine808,
		BassStyle:      "moog",
		SynthStyle:     "dark_analog",
		UseSidechain:   true,
		UseGatedReverb: true,
		Instruments:    []string{"synth", "drum_machine", "bass_synth", "pad"},
	},

	"gary_numan": {
		Key:           "gary_numan",
		ScaleName:     "natural_minor",
		RootMIDI:      55,
		TempoRangeMin: 100,
		TempoRangeMax: 122,
		ChordProgressions: [][4]string{
			{"i", "VII", "i", "VII"},
			{"i", "VI", "i", "VI"},
			{"i", "i", "VII", "VII"},
		},
		HarmonicRhythm: "static",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				SwingAmount: 0.0,
			},
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
				SwingAmount: 0.0,
			},
		},
		ArpPatterns: [][]int{
			{0, 0, 0, 0, 2, 2, 2, 2},
			{0, 4, 0, 4, 0, 4, 0, 4},
			{0, 2, 0, 2, 4, 2, 0, 2},
		},
		DrumMachine:    DrumMachine808,
		BassStyle:      "sequenced",
		SynthStyle:     "metallic_ring_mod",
		UseSidechain:   false,
		UseGatedReverb: false,
		Instruments:    []string{"synth", "drum_machine", "bass_synth", "arp"},
	},

	"kraftwerk": {
		Key:           "kraftwerk",
		ScaleName:     "major",
		RootMIDI:      60,
		TempoRangeMin: 115,
		TempoRangeMax: 130,
		ChordProgressions: [][4]string{
			{"I", "I", "I", "I"},
			{"I", "V", "I", "V"},
			{"I", "IV", "V", "I"},
		},
		HarmonicRhythm: "rigid",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				SwingAmount: 0.0,
			},
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
				HihatClosed: [16]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1},
				SwingAmount: 0.0,
			},
		},
		ArpPatterns: [][]int{
			{0, 2, 4, 2},
			{0, 4, 7, 4},
			{0, 0, 4, 4, 7, 7, 4, 4},
		},
		DrumMachine:    DrumMachine909,
		BassStyle:      "sequenced",
		SynthStyle:     "clean_sine",
		UseSidechain:   false,
		UseGatedReverb: false,
		Instruments:    []string{"synth", "sequencer", "drum_machine", "vocoder"},
	},

	"pet_shop_boys": {
		Key:           "pet_shop_boys",
		ScaleName:     "major",
		RootMIDI:      62,
		TempoRangeMin: 118,
		TempoRangeMax: 128,
		ChordProgressions: [][4]string{
			{"I", "V", "vi", "IV"},
			{"I", "vi", "IV", "V"},
			{"vi", "IV", "I", "V"},
		},
		HarmonicRhythm: "normal",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
				SwingAmount: 0.1,
			},
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1},
				HihatClosed: [16]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
				HihatOpen:   [16]int{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
				SwingAmount: 0.12,
			},
		},
		ArpPatterns: [][]int{
			{0, 2, 4, 7, 9, 7, 4, 2},
			{0, 4, 7, 4, 9, 7, 4, 0},
			{0, 7, 4, 7, 0, 9, 4, 2},
		},
		DrumMachine:    DrumMachine909,
		BassStyle:      "synth",
		SynthStyle:     "bright_digital_fm",
		UseSidechain:   true,
		UseGatedReverb: true,
		Instruments:    []string{"synth", "drum_machine", "bass_synth", "pad", "lead"},
	},

	"new_order": {
		Key:           "new_order",
		ScaleName:     "dorian",
		RootMIDI:      59,
		TempoRangeMin: 120,
		TempoRangeMax: 135,
		ChordProgressions: [][4]string{
			{"i", "VII", "VI", "VII"},
			{"i", "IV", "VII", "i"},
			{"VI", "VII", "i", "i"},
		},
		HarmonicRhythm: "normal",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
				HihatOpen:   [16]int{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
				SwingAmount: 0.06,
			},
		},
		ArpPatterns: [][]int{
			{0, 3, 5, 7, 5, 3},
			{0, 5, 7, 10, 7, 5},
		},
		DrumMachine:    DrumMachine909,
		BassStyle:      "driving",
		SynthStyle:     "warm_analog",
		UseSidechain:   true,
		UseGatedReverb: false,
		Instruments:    []string{"synth", "bass_guitar", "drum_machine", "pad"},
	},

	"human_league": {
		Key:           "human_league",
		ScaleName:     "major",
		RootMIDI:      60,
		TempoRangeMin: 110,
		TempoRangeMax: 125,
		ChordProgressions: [][4]string{
			{"I", "iii", "IV", "V"},
			{"vi", "IV", "I", "V"},
		},
		HarmonicRhythm: "normal",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1},
				SwingAmount: 0.04,
			},
		},
		ArpPatterns: [][]int{
			{0, 4, 7, 9, 7, 4},
		},
		DrumMachine:    DrumMachine808,
		BassStyle:      "synth",
		SynthStyle:     "bright_digital_fm",
		UseSidechain:   false,
		UseGatedReverb: true,
		Instruments:    []string{"synth", "drum_machine", "pad", "lead"},
	},

	"omd": {
		Key:           "omd",
		ScaleName:     "dorian",
		RootMIDI:      57,
		TempoRangeMin: 100,
		TempoRangeMax: 120,
		ChordProgressions: [][4]string{
			{"i", "VII", "IV", "i"},
			{"i", "VI", "VII", "i"},
		},
		HarmonicRhythm: "slow",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				SwingAmount: 0.0,
			},
		},
		ArpPatterns: [][]int{
			{0, 2, 3, 5, 3, 2},
		},
		DrumMachine:    DrumMachine808,
		BassStyle:      "moog",
		SynthStyle:     "dark_analog",
		UseSidechain:   false,
		UseGatedReverb: true,
		Instruments:    []string{"synth", "drum_machine", "pad", "arp"},
	},

	"tears_for_fears": {
		Key:           "tears_for_fears",
		ScaleName:     "major",
		RootMIDI:      58,
		TempoRangeMin: 100,
		TempoRangeMax: 120,
		ChordProgressions: [][4]string{
			{"I", "V", "vi", "IV"},
			{"vi", "V", "IV", "V"},
		},
		HarmonicRhythm: "normal",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
				HihatOpen:   [16]int{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
				SwingAmount: 0.05,
			},
		},
		ArpPatterns: [][]int{
			{0, 4, 5, 7, 5, 4},
		},
		DrumMachine:    DrumMachineLinn,
		BassStyle:      "synth",
		SynthStyle:     "orchestral",
		UseSidechain:   false,
		UseGatedReverb: true,
		Instruments:    []string{"synth", "drum_machine", "bass_synth", "pad", "lead"},
	},

	"eurythmics": {
		Key:           "eurythmics",
		ScaleName:     "natural_minor",
		RootMIDI:      57,
		TempoRangeMin: 110,
		TempoRangeMax: 130,
		ChordProgressions: [][4]string{
			{"i", "VI", "VII", "i"},
			{"i", "III", "VII", "VI"},
		},
		HarmonicRhythm: "normal",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
				SwingAmount: 0.07,
			},
		},
		ArpPatterns: [][]int{
			{0, 3, 7, 10, 7, 3},
		},
		DrumMachine:    DrumMachine909,
		BassStyle:      "moog",
		SynthStyle:     "metallic_ring_mod",
		UseSidechain:   true,
		UseGatedReverb: false,
		Instruments:    []string{"synth", "drum_machine", "bass_synth", "pad"},
	},

	"yazoo": {
		Key:           "yazoo",
		ScaleName:     "natural_minor",
		RootMIDI:      55,
		TempoRangeMin: 110,
		TempoRangeMax: 125,
		ChordProgressions: [][4]string{
			{"i", "VII", "VI", "VII"},
			{"i", "iv", "VII", "VI"},
		},
		HarmonicRhythm: "normal",
		GrooveTemplates: []GrooveTemplate{
			{
				Resolution:  16,
				Kick:        [16]int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
				Snare:       [16]int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				HihatClosed: [16]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
				HihatOpen:   [16]int{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1},
				SwingAmount: 0.03,
			},
		},
		ArpPatterns: [][]int{
			{0, 2, 3, 7, 3, 2},
		},
		DrumMachine:    DrumMachine808,
		BassStyle:      "sequenced",
		SynthStyle:     "clean_sine",
		UseSidechain:   false,
		UseGatedReverb: false,
		Instruments:    []string{"synth", "drum_machine", "bass_synth", "pad"},
	},
}

// normalizeArtistKey lowercases, strips a leading "the ", and replaces
// spaces with underscores, matching "Depeche Mode" -> "depeche_mode".
func normalizeArtistKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "the ")
	s = strings.Join(strings.Fields(s), "_")
	return s
}

// Lookup resolves an artist name to its profile, case-insensitively,
// stripping a leading "the " and normalising spaces to underscores. Unknown
// artists fall back to DefaultKey; this is never an error.
func Lookup(artistName string) Profile {
	key := normalizeArtistKey(artistName)
	if p, ok := registry[key]; ok {
		return p
	}
	return registry[DefaultKey]
}

// NormalizeKey exposes normalizeArtistKey for callers that need to report
// which canonical key an artist name resolved to (e.g. for logging an
// unknown-artist substitution).
func NormalizeKey(artistName string) string {
	return normalizeArtistKey(artistName)
}

// Known reports whether artistName resolves to a profile without falling
// back to the default.
func Known(artistName string) bool {
	_, ok := registry[normalizeArtistKey(artistName)]
	return ok
}

// MergeInstruments returns the set-union of the Instruments lists of the
// given profiles, preserving first-seen order.
func MergeInstruments(profiles []Profile) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range profiles {
		for _, inst := range p.Instruments {
			if !seen[inst] {
				seen[inst] = true
				out = append(out, inst)
			}
		}
	}
	return out
}

// AverageTempo returns the midpoint of the averaged tempo ranges across the
// given profiles: mean(min) and mean(max) are each computed, then their
// midpoint is returned.
func AverageTempo(profiles []Profile) int {
	if len(profiles) == 0 {
		return 100
	}
	var sumMin, sumMax float64
	for _, p := range profiles {
		sumMin += float64(p.TempoRangeMin)
		sumMax += float64(p.TempoRangeMax)
	}
	n := float64(len(profiles))
	avgMin := sumMin / n
	avgMax := sumMax / n
	return int((avgMin + avgMax) / 2)
}
