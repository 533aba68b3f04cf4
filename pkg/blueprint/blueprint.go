// Package blueprint deterministically assembles the non-audio metadata of a
// response — title, hook, chorus, per-section lyrics, vocal style — purely
// as a function of the request's content hash, so identical requests return
// identical text alongside identical audio.
package blueprint

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/synthline/producer-engine/pkg/plan"
	"github.com/synthline/producer-engine/pkg/profile"
)

// VocalStyle describes the voice the (external, out-of-scope) TTS layer
// should use.
type VocalStyle struct {
	Gender string
	Tone   string
	Energy string
}

// SectionBlueprint is one entry of the assembled song's section list.
type SectionBlueprint struct {
	Name        string
	Bars        int
	Description string
	Lyrics      string
}

// SongBlueprint is the full non-audio response payload.
type SongBlueprint struct {
	TrackID    string
	Title      string
	Hook       string
	Chorus     string
	VocalStyle VocalStyle
	Sections   []SectionBlueprint
	TempoBPM   float64
	Mood       string
	// Instruments is the set-union of every resolved artist profile's
	// instrument list, set by the caller after Build (Build itself has no
	// access to the resolved profiles).
	Instruments []string
}

var titleTemplates = []string{
	"Neon Static",
	"Wire and Silence",
	"Glass Horizon",
	"Violet Frequency",
	"After the Chorus Lights",
	"Shatterproof Heart",
	"Analog Ghosts",
	"Midnight Channel",
}

var hookTemplates = []string{
	"We're running on %s, chasing the sound",
	"Hold the line, %s, don't look down",
	"Say it once more, %s, say it out loud",
	"Every signal bends back to %s",
	"Static and starlight, %s and me",
}

const chorusTemplate = "%s\n%s\nCan't shake this feeling, won't shake it now\n%s\nCarry it with me, %s"

var moodModifiers = map[string]string{
	"dark":       "dark",
	"energetic":  "energetic",
	"emotional":  "emotional",
	"dreamy":     "dreamy",
	"uplifting":  "uplifting",
	"chill":      "relaxed",
	"mechanical": "clipped",
	"neutral":    "even",
}

type vocalDefault struct {
	Gender string
	Tone   string
	Energy string
}

var vocalDefaults = map[string]vocalDefault{
	"depeche_mode":    {Gender: "male", Tone: "baritone", Energy: "restrained"},
	"gary_numan":      {Gender: "male", Tone: "monotone", Energy: "detached"},
	"kraftwerk":       {Gender: "male", Tone: "robotic", Energy: "deadpan"},
	"pet_shop_boys":   {Gender: "male", Tone: "breathy tenor", Energy: "cool"},
	"new_order":       {Gender: "male", Tone: "plaintive", Energy: "driving"},
	"human_league":    {Gender: "female", Tone: "airy", Energy: "bright"},
	"omd":             {Gender: "male", Tone: "wistful", Energy: "measured"},
	"tears_for_fears": {Gender: "male", Tone: "soaring", Energy: "anthemic"},
	"eurythmics":      {Gender: "female", Tone: "smoky", Energy: "intense"},
	"yazoo":           {Gender: "female", Tone: "soulful", Energy: "warm"},
}

// sectionLyrics holds per-class lyric line templates; a name not matching
// any class falls back to the verse template at 12 bars.
var sectionLyrics = map[string]struct {
	Bars   int
	Lyrics string
}{
	"intro":  {Bars: 8, Lyrics: "(instrumental intro)"},
	"verse":  {Bars: 16, Lyrics: "Walking through the static, counting down the nights"},
	"chorus": {Bars: 16, Lyrics: "This is where the silence breaks, this is where it all ignites"},
	"bridge": {Bars: 8, Lyrics: "Hold still, let the colors bleed, nothing left to hide"},
	"outro":  {Bars: 8, Lyrics: "(fading out)"},
}

func sectionClass(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "intro"):
		return "intro"
	case strings.HasPrefix(lower, "verse"):
		return "verse"
	case strings.HasPrefix(lower, "pre_chorus"), strings.HasPrefix(lower, "chorus"), strings.HasPrefix(lower, "drop"), strings.HasPrefix(lower, "hook"):
		return "chorus"
	case strings.HasPrefix(lower, "bridge"):
		return "bridge"
	case strings.HasPrefix(lower, "outro"):
		return "outro"
	default:
		return ""
	}
}

// hashHex returns the MD5 hex digest of s.
func hashHex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ContentKey builds the concatenated artists+mood+reference_text string the
// track_id hash (and the render's noise seed) are both derived from, so the
// blueprint's track_id always names the same file the renderer wrote.
func ContentKey(req *plan.MusicRequest, mood string) string {
	primaryArtist := "generic"
	if len(req.ArtistInfluences) > 0 {
		primaryArtist = req.ArtistInfluences[0]
	}
	artistsJoined := strings.Join(req.ArtistInfluences, "_")
	if artistsJoined == "" {
		artistsJoined = primaryArtist
	}
	return strings.ReplaceAll(artistsJoined, " ", "_") + "_" + mood + "_" + req.ReferenceText
}

// ContentHash returns the raw MD5 digest of ContentKey(req, mood).
func ContentHash(req *plan.MusicRequest, mood string) []byte {
	sum := md5.Sum([]byte(ContentKey(req, mood)))
	return sum[:]
}

// TrackID returns the first 12 hex characters of ContentHash(req, mood).
func TrackID(req *plan.MusicRequest, mood string) string {
	return hex.EncodeToString(ContentHash(req, mood))[:12]
}

func hashUint(s string) uint64 {
	sum := md5.Sum([]byte(s))
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(sum[i])
	}
	return v
}

func capitalizeWords(words []string, minLen int) []string {
	var out []string
	for _, w := range words {
		if len(w) > minLen {
			out = append(out, strings.ToUpper(w[:1])+w[1:])
		}
	}
	return out
}

// Build assembles a SongBlueprint for req and its resolved plan, keyed off
// the same primary artist and content hash the renderer uses so track_id,
// title, and hook line up with the audio file.
func Build(req *plan.MusicRequest, cfg plan.Config) SongBlueprint {
	req.Normalize()

	primaryArtist := "generic"
	if len(req.ArtistInfluences) > 0 {
		primaryArtist = req.ArtistInfluences[0]
	}
	artistsJoined := strings.Join(req.ArtistInfluences, "_")
	if artistsJoined == "" {
		artistsJoined = primaryArtist
	}

	trackID := TrackID(req, cfg.Mood)

	title := titleTemplates[hashUint(primaryArtist)%uint64(len(titleTemplates))]
	if len(strings.TrimSpace(req.ReferenceText)) > 10 {
		words := strings.Fields(req.ReferenceText)
		if len(words) > 4 {
			words = words[:4]
		}
		capitalized := capitalizeWords(words, 3)
		if len(capitalized) > 0 {
			title = strings.Join(capitalized, " ")
			if len(title) > 40 {
				title = title[:40]
			}
		}
	}

	hookTemplate := hookTemplates[hashUint(artistsJoined+cfg.Mood)%uint64(len(hookTemplates))]
	hook := fmt.Sprintf(hookTemplate, title)
	chorus := fmt.Sprintf(chorusTemplate, hook, title, hook, title)

	sectionNames := req.Sections
	if len(sectionNames) == 0 {
		sectionNames = []string{"intro", "verse", "chorus", "verse", "bridge", "chorus", "outro"}
	}
	sections := make([]SectionBlueprint, 0, len(sectionNames))
	for _, name := range sectionNames {
		class := sectionClass(name)
		tmpl, ok := sectionLyrics[class]
		if !ok {
			tmpl = struct {
				Bars   int
				Lyrics string
			}{Bars: 12, Lyrics: sectionLyrics["verse"].Lyrics}
		}
		sections = append(sections, SectionBlueprint{
			Name:        name,
			Bars:        tmpl.Bars,
			Description: strings.ReplaceAll(name, "_", " ") + " section",
			Lyrics:      tmpl.Lyrics,
		})
	}

	key := profile.NormalizeKey(primaryArtist)
	vd, ok := vocalDefaults[key]
	if !ok {
		vd = vocalDefaults[profile.DefaultKey]
	}
	modifier := moodModifiers[cfg.Mood]
	if modifier == "" {
		modifier = cfg.Mood
	}
	vocalStyle := VocalStyle{
		Gender: vd.Gender,
		Tone:   strings.TrimSpace(modifier + " " + vd.Tone),
		Energy: vd.Energy,
	}

	return SongBlueprint{
		TrackID:    trackID,
		Title:      title,
		Hook:       hook,
		Chorus:     chorus,
		VocalStyle: vocalStyle,
		Sections:   sections,
		TempoBPM:   cfg.TempoBPM,
		Mood:       cfg.Mood,
	}
}
