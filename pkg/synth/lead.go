package synth

import "math"

// LeadPattern is the fixed 16-step melody pattern used by the lead voice,
// indexing scale degrees relative to the current scale.
var LeadPattern = []int{0, 2, 4, 2, 0, 2, 4, 5, 4, 2, 0, 2, 4, 7, 4, 0}

func scaleFreq(scale []float64, degree int) float64 {
	if len(scale) == 0 {
		return 0
	}
	octave := 0
	for degree >= len(scale) {
		degree -= len(scale)
		octave++
	}
	for degree < 0 {
		degree += len(scale)
		octave--
	}
	return scale[degree] * math.Pow(2, float64(octave))
}

// stepWalk renders a step-pattern melody voice at 16th-note resolution over
// the whole track duration, indexing scale by pattern[i%len(pattern)], each
// note a square wave shaped by a pluck envelope.
func stepWalk(pattern []int, scale []float64, tempoBPM, totalSeconds, gain float64) []float64 {
	total := numSamples(totalSeconds)
	out := make([]float64, total)
	if len(pattern) == 0 {
		return out
	}
	stepSamples := int(math.Round(15 * SampleRate / tempoBPM))
	if stepSamples <= 0 {
		return out
	}
	for i, pos := 0, 0; pos < total; i, pos = i+1, pos+stepSamples {
		degree := pattern[i%len(pattern)]
		freq := scaleFreq(scale, degree)
		if freq <= 0 {
			continue
		}
		remaining := total - pos
		n := stepSamples
		if n > remaining {
			n = remaining
		}
		dur := float64(n) / SampleRate
		note := Square(freq, dur, gain, 0.5)
		for j := range note {
			t := float64(j) / SampleRate
			note[j] *= math.Exp(-20 * t)
		}
		Add(out, note, pos)
	}
	return out
}

// Lead renders the 16-step lead melody over the given scale, gain ~0.12.
func Lead(scale []float64, tempoBPM, totalSeconds float64) []float64 {
	return stepWalk(LeadPattern, scale, tempoBPM, totalSeconds, 0.12)
}

// Arpeggio renders an artist-profile arpeggio pattern over the given scale,
// gain ~0.08.
func Arpeggio(pattern []int, scale []float64, tempoBPM, totalSeconds float64) []float64 {
	return stepWalk(pattern, scale, tempoBPM, totalSeconds, 0.08)
}
