// Package sequencer scatters one-shot instrument voices onto a sample
// timeline according to a {0,1} step pattern, a tempo, and a swing amount.
package sequencer

// Resolution selects the step duration used to interpret a pattern.
type Resolution int

const (
	// Quarter steps a pattern at quarter-note resolution.
	Quarter Resolution = iota
	// Sixteenth steps a pattern at sixteenth-note resolution.
	Sixteenth
)

const sampleRate = 44100

// StepSamples returns the sample count of one step at the given resolution
// and tempo.
func StepSamples(res Resolution, tempoBPM float64) int {
	switch res {
	case Sixteenth:
		return round(15 * sampleRate / tempoBPM)
	default:
		return round(60 * sampleRate / tempoBPM)
	}
}

func round(x float64) int {
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}

// Scatter walks step indices 0, 1, 2, ... placing voice() at every step
// where pattern[i%len(pattern)] == 1, stopping once the step's start sample
// would reach or exceed totalSamples. Voices are truncated if they would run
// past the end of the output buffer. swingAmount, if > 0, delays every odd
// step by swingAmount*stepSamples/2 samples. Multiple placements mix by
// addition.
func Scatter(out []float64, pattern []int, stepSamples int, swingAmount float64, voice func() []float64) {
	if stepSamples <= 0 || len(pattern) == 0 {
		return
	}
	totalSamples := len(out)
	for i := 0; ; i++ {
		start := i * stepSamples
		if i%2 == 1 && swingAmount > 0 {
			start += int(swingAmount * float64(stepSamples) / 2)
		}
		if start >= totalSamples {
			break
		}
		if pattern[i%len(pattern)] != 1 {
			continue
		}
		buf := voice()
		end := start + len(buf)
		if end > totalSamples {
			end = totalSamples
		}
		for j := start; j < end; j++ {
			out[j] += buf[j-start]
		}
	}
}
