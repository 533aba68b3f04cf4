// Package render implements the arrangement and render pipeline: it turns
// a resolved ProducerPlan and artist profile into full-duration instrument
// tracks, mixes them section-by-section, applies sidechain ducking, gated
// reverb, normalisation, fades, and stereo widening, and hands back the
// finished stereo float buffers for pkg/wav to encode.
package render

import (
	"math"

	"github.com/synthline/producer-engine/pkg/plan"
	"github.com/synthline/producer-engine/pkg/prng"
	"github.com/synthline/producer-engine/pkg/profile"
	"github.com/synthline/producer-engine/pkg/section"
	"github.com/synthline/producer-engine/pkg/sequencer"
	"github.com/synthline/producer-engine/pkg/synth"
	"github.com/synthline/producer-engine/pkg/theory"
)

const beatsPerBar = 4

// Result is the finished stereo render, ready for WAV encoding.
type Result struct {
	Left            []float64
	Right           []float64
	DurationSeconds float64
}

var defaultKick = []int{1, 0, 0, 0, 1, 0, 0, 0}
var defaultSnare = []int{0, 0, 1, 0, 0, 0, 1, 0}
var defaultHihat = []int{1, 1, 1, 1, 1, 1, 1, 1}
var kraftwerkHihat = []int{1, 0, 1, 0, 1, 0, 1, 0}
var shiftedKick = []int{1, 0, 0, 0, 1, 0, 1, 0}

var sidechainArtists = map[string]bool{
	"depeche_mode":  true,
	"new_order":     true,
	"pet_shop_boys": true,
	"eurythmics":    true,
}

// Render runs the full pipeline described by the arrangement & render
// pipeline section for cfg, using prof as the primary artist's musical DNA
// and seed to derive the single deterministic noise stream the whole render
// draws from.
func Render(cfg plan.Config, prof profile.Profile, seed []byte) Result {
	stream := prng.NewStreamFromBytes(seed)

	totalBars := 0
	for _, name := range cfg.Structure {
		totalBars += section.Lookup(name).Bars
	}
	if totalBars == 0 {
		totalBars = 8
	}
	totalSeconds := float64(totalBars) * beatsPerBar * 60 / cfg.TempoBPM
	if totalSeconds > 60 {
		totalSeconds = 60
	}
	numSamples := int(math.Round(totalSeconds * synth.SampleRate))

	rootFreq, keyScale := theory.RootFromKey(cfg.Key)
	scaleName := prof.ScaleName
	if scaleName == "" {
		scaleName = keyScale
	}
	scaleDegrees := theory.ScaleDegrees(scaleName)

	scale8 := make([]float64, 0, len(scaleDegrees)+1)
	for _, d := range scaleDegrees {
		scale8 = append(scale8, theory.DegreeToFrequency(rootFreq, d))
	}
	scale8 = append(scale8, theory.DegreeToFrequency(rootFreq, 12))

	rootDegrees := theory.ChordProgressionRoot(scaleDegrees)
	rootProgression := make([]float64, 4)
	for i, d := range rootDegrees {
		rootProgression[i] = theory.DegreeToFrequency(rootFreq, d)
	}

	numerals := [4]string{"i", "iv", "v", "i"}
	if len(prof.ChordProgressions) > 0 {
		numerals = prof.ChordProgressions[0]
	}
	chords := make([][]float64, 4)
	for i, numeral := range numerals {
		semis := theory.RomanToTriad(numeral, scaleDegrees)
		chords[i] = []float64{
			theory.DegreeToFrequency(rootFreq, semis[0]),
			theory.DegreeToFrequency(rootFreq, semis[1]),
			theory.DegreeToFrequency(rootFreq, semis[2]),
		}
	}

	drumsTrack := renderDrums(prof, cfg.TempoBPM, totalSeconds, numSamples, stream)
	bassTrack := renderBass(prof.BassStyle, rootProgression, cfg.TempoBPM, totalSeconds)
	padTrack := renderPad(prof.SynthStyle, chords, cfg.TempoBPM, totalSeconds)
	leadTrack := renderLead(prof, scale8, cfg.TempoBPM, totalSeconds)

	mix := mixSections(cfg.Structure, cfg.TempoBPM, numSamples, drumsTrack, bassTrack, padTrack, leadTrack)

	if sidechainArtists[prof.Key] {
		mix = applySidechain(mix, drumsTrack)
	}
	if prof.UseGatedReverb {
		mix = applyGatedReverb(mix, drumsTrack)
	}

	mix = normalise(mix, 0.85)
	mix = fade(mix, 0.5)

	left, right := stereoWiden(mix, padTrack)

	return Result{Left: left, Right: right, DurationSeconds: totalSeconds}
}

func renderDrums(prof profile.Profile, tempoBPM, totalSeconds float64, numSamples int, stream *prng.Stream) []float64 {
	var kickVoice, snareVoice func() []float64
	switch prof.DrumMachine {
	case profile.DrumMachine909:
		kickVoice = func() []float64 { return synth.Kick909(stream) }
		snareVoice = func() []float64 { return synth.Snare909(stream) }
	case profile.DrumMachineLinn:
		kickVoice = func() []float64 { return synth.KickAcoustic(stream) }
		snareVoice = func() []float64 { return synth.SnareAcoustic(stream) }
	default:
		kickVoice = func() []float64 { return synth.Kick808(stream) }
		snareVoice = func() []float64 { return synth.Snare808(stream) }
	}
	hihatVoice := func() []float64 { return synth.HiHat(stream) }

	out := make([]float64, numSamples)

	// The artist's own authored groove (16-step, with its swing amount)
	// takes precedence when the registry has one; only artists without a
	// groove template fall back to the fixed quarter-resolution patterns.
	if len(prof.GrooveTemplates) > 0 {
		g := prof.GrooveTemplates[0]
		stepSamples := sequencer.StepSamples(sequencer.Sixteenth, tempoBPM)
		sequencer.Scatter(out, g.Kick[:], stepSamples, g.SwingAmount, kickVoice)
		sequencer.Scatter(out, g.Snare[:], stepSamples, g.SwingAmount, snareVoice)
		sequencer.Scatter(out, g.HihatClosed[:], stepSamples, g.SwingAmount, hihatVoice)
		sequencer.Scatter(out, g.HihatOpen[:], stepSamples, g.SwingAmount, hihatVoice)
		return out
	}

	kick := defaultKick
	snare := defaultSnare
	hihat := defaultHihat
	switch prof.Key {
	case "kraftwerk":
		hihat = kraftwerkHihat
	case "depeche_mode", "gary_numan":
		kick = shiftedKick
	}

	stepSamples := sequencer.StepSamples(sequencer.Quarter, tempoBPM)
	sequencer.Scatter(out, kick, stepSamples, 0, kickVoice)
	sequencer.Scatter(out, snare, stepSamples, 0, snareVoice)
	sequencer.Scatter(out, hihat, stepSamples, 0, hihatVoice)
	return out
}

func renderBass(style string, progression []float64, tempoBPM, totalSeconds float64) []float64 {
	switch style {
	case "sequenced":
		return synth.BassSequenced(progression, tempoBPM, totalSeconds)
	case "driving":
		return synth.BassDriving(progression, tempoBPM, totalSeconds)
	case "synth":
		return synth.BassSynth(progression, tempoBPM, totalSeconds)
	default:
		return synth.BassMoog(progression, tempoBPM, totalSeconds)
	}
}

func renderPad(style string, chords [][]float64, tempoBPM, totalSeconds float64) []float64 {
	switch style {
	case "bright_digital_fm":
		return synth.PadBrightDigitalFM(chords, tempoBPM, totalSeconds)
	case "warm_analog":
		return synth.PadWarmAnalog(chords, tempoBPM, totalSeconds)
	case "metallic_ring_mod":
		return synth.PadMetallicRingMod(chords, tempoBPM, totalSeconds)
	case "orchestral":
		return synth.PadOrchestral(chords, tempoBPM, totalSeconds)
	case "clean_sine":
		return synth.PadCleanSine(chords, tempoBPM, totalSeconds)
	default:
		return synth.PadDarkAnalog(chords, tempoBPM, totalSeconds)
	}
}

// renderLead mixes the fixed lead melody with the artist's first arpeggio
// pattern (when it has one) so arp_patterns data is actually exercised.
func renderLead(prof profile.Profile, scale []float64, tempoBPM, totalSeconds float64) []float64 {
	lead := synth.Lead(scale, tempoBPM, totalSeconds)
	if len(prof.ArpPatterns) == 0 {
		return lead
	}
	arp := synth.Arpeggio(prof.ArpPatterns[0], scale, tempoBPM, totalSeconds)
	return synth.Mix(lead, arp)
}

func trackFor(inst section.Instrument, drums, bass, pad, lead []float64) []float64 {
	switch inst {
	case section.Drums, section.LightDrums:
		return drums
	case section.Bass:
		return bass
	case section.Pad:
		return pad
	case section.Lead, section.LightLead:
		return lead
	default:
		return nil
	}
}

func mixSections(structure []string, tempoBPM float64, numSamples int, drums, bass, pad, lead []float64) []float64 {
	mix := make([]float64, numSamples)
	current := 0
	for _, name := range structure {
		spec := section.Lookup(name)
		barSamples := int(math.Round(float64(beatsPerBar) * 60 / tempoBPM * synth.SampleRate))
		length := spec.Bars * barSamples
		end := current + length
		if end > numSamples {
			end = numSamples
		}
		if current >= numSamples {
			break
		}
		for _, inst := range spec.Instruments {
			track := trackFor(inst, drums, bass, pad, lead)
			if track == nil {
				continue
			}
			gain := section.Gain(inst)
			for i := current; i < end && i < len(track); i++ {
				mix[i] += track[i] * gain
			}
		}
		current = end
	}
	return mix
}

// applySidechain box-averages |drums| over a 50ms window, normalises by its
// max, and ducks the mix by up to 40%. The trigger is the combined
// kick/snare/hihat drums track; no separate kick track is kept, so snare
// and hihat hits duck the mix as well.
func applySidechain(mix, drums []float64) []float64 {
	window := int(0.05 * synth.SampleRate)
	if window < 1 {
		window = 1
	}
	abs := make([]float64, len(drums))
	for i, v := range drums {
		abs[i] = math.Abs(v)
	}
	boxed := boxAverage(abs, window)
	maxVal := 0.0
	for _, v := range boxed {
		if v > maxVal {
			maxVal = v
		}
	}
	out := make([]float64, len(mix))
	for i, v := range mix {
		duck := 0.0
		if maxVal > 0 && i < len(boxed) {
			duck = boxed[i] / maxVal
		}
		sc := 1 - 0.4*duck
		if sc < 0.3 {
			sc = 0.3
		}
		if sc > 1.0 {
			sc = 1.0
		}
		out[i] = v * sc
	}
	return out
}

func boxAverage(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	sum := 0.0
	for i := range x {
		sum += x[i]
		if i >= window {
			sum -= x[i-window]
		}
		n := window
		if i+1 < window {
			n = i + 1
		}
		out[i] = sum / float64(n)
	}
	return out
}

// applyGatedReverb adds a 150ms exponential tail after each snare-level hit
// in the drums track (this engine mixes kick/snare/hihat into one drums
// buffer, so the gate triggers on the drums track's own transients, which
// include the snare hits).
func applyGatedReverb(mix, drums []float64) []float64 {
	maxAbs := 0.0
	for _, v := range drums {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return mix
	}
	threshold := 0.1 * maxAbs
	gateSamples := int(0.15 * synth.SampleRate)
	out := make([]float64, len(mix))
	copy(out, mix)
	for i, v := range drums {
		if math.Abs(v) <= threshold {
			continue
		}
		end := i + gateSamples
		if end > len(out) {
			end = len(out)
		}
		for j := i; j < end; j++ {
			t := float64(j-i) / synth.SampleRate
			out[j] += 0.3 * v * math.Exp(-10*t)
		}
	}
	return out
}

func normalise(x []float64, targetPeak float64) []float64 {
	peak := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	out := make([]float64, len(x))
	if peak == 0 {
		copy(out, x)
		return out
	}
	gain := targetPeak / peak
	for i, v := range x {
		out[i] = v * gain
	}
	return out
}

func fade(x []float64, seconds float64) []float64 {
	n := int(seconds * synth.SampleRate)
	out := make([]float64, len(x))
	copy(out, x)
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		out[i] *= p
	}
	for i := 0; i < n; i++ {
		idx := len(out) - 1 - i
		p := float64(i) / float64(n)
		out[idx] *= p
	}
	return out
}

// stereoWiden duplicates mix to (L,R), then adds a 15ms-delayed copy of the
// pad track into R at 0.15 gain for width.
func stereoWiden(mix, pad []float64) (left, right []float64) {
	left = make([]float64, len(mix))
	copy(left, mix)
	right = make([]float64, len(mix))
	copy(right, mix)

	delaySamples := int(math.Round(0.015 * synth.SampleRate))
	for i := range right {
		srcIdx := i - delaySamples
		if srcIdx >= 0 && srcIdx < len(pad) {
			right[i] += pad[srcIdx] * 0.15
		}
	}
	return left, right
}
