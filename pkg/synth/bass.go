package synth

import "math"

func barSeconds(tempoBPM float64) float64 {
	return 4 * 60 / tempoBPM
}

// walkBars renders one buffer per bar by calling render(barIndex, freq,
// barSamples) and concatenating the results into a buffer of exactly
// numSamples(totalSeconds) length, truncating the final bar if needed.
func walkBars(progression []float64, tempoBPM, totalSeconds float64, render func(barIndex int, freq float64, barSamples int) []float64) []float64 {
	total := numSamples(totalSeconds)
	out := make([]float64, total)
	barN := numSamples(barSeconds(tempoBPM))
	if barN <= 0 || len(progression) == 0 {
		return out
	}

	for pos, bar := 0, 0; pos < total; pos, bar = pos+barN, bar+1 {
		freq := progression[bar%len(progression)]
		remaining := total - pos
		n := barN
		if n > remaining {
			n = remaining
		}
		buf := render(bar, freq, barN)
		if len(buf) > n {
			buf = buf[:n]
		}
		Add(out, buf, pos)
	}
	return out
}

// BassMoog renders the Moog-style bass: three detuned saws per chord bar
// averaged, shaped by a filter envelope, plus a sub-octave sine, wrapped in
// a 5ms/150ms/0.65/250ms ADSR at 0.4 gain.
func BassMoog(progression []float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBars(progression, tempoBPM, totalSeconds, func(_ int, freq float64, barN int) []float64 {
		dur := float64(barN) / SampleRate

		saw1 := Saw(freq*0.998, dur, 1.0)
		saw2 := Saw(freq, dur, 1.0)
		saw3 := Saw(freq*1.002, dur, 1.0)
		avg := make([]float64, barN)
		for i := 0; i < barN && i < len(saw1); i++ {
			avg[i] = (saw1[i] + saw2[i] + saw3[i]) / 3
		}
		for i := range avg {
			t := float64(i) / SampleRate
			filterEnv := 0.3 + 0.4*math.Exp(-5*t)
			avg[i] *= filterEnv
		}

		sub := Scale(Sine(freq/2, dur, 1.0), 0.3)

		voice := Mix(avg, sub)
		env := ADSR(0.005, 0.150, 0.65, 0.250, len(voice))
		return Scale(ApplyEnvelope(voice, env), 0.4)
	})
}

// BassSequenced renders the sequenced bass: a 16th-note pattern of narrow
// (duty 0.25) pulses at the chord root, each shaped by e^(-20t) with a small
// downward pitch bend.
func BassSequenced(progression []float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBars(progression, tempoBPM, totalSeconds, func(_ int, freq float64, barN int) []float64 {
		out := make([]float64, barN)
		stepN := barN / 16
		if stepN <= 0 {
			return out
		}
		for step := 0; step*stepN < barN; step++ {
			noteSamples := stepN
			if step*stepN+noteSamples > barN {
				noteSamples = barN - step*stepN
			}
			dur := float64(noteSamples) / SampleRate
			note := make([]float64, noteSamples)
			phase := 0.0
			for i := 0; i < noteSamples; i++ {
				t := float64(i) / SampleRate
				bentFreq := freq * (1 - 0.05*t/dur)
				phase += bentFreq / SampleRate
				p := frac(phase)
				var v float64
				if p < 0.25 {
					v = 1
				} else {
					v = -1
				}
				note[i] = v * math.Exp(-20*t)
			}
			Add(out, note, step*stepN)
		}
		return out
	})
}

// BassDriving renders the driving bass: 8th-note sine notes with e^(-8t)
// decay envelopes.
func BassDriving(progression []float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBars(progression, tempoBPM, totalSeconds, func(_ int, freq float64, barN int) []float64 {
		out := make([]float64, barN)
		stepN := barN / 8
		if stepN <= 0 {
			return out
		}
		for step := 0; step*stepN < barN; step++ {
			noteSamples := stepN
			if step*stepN+noteSamples > barN {
				noteSamples = barN - step*stepN
			}
			dur := float64(noteSamples) / SampleRate
			note := Sine(freq, dur, 1.0)
			for i := range note {
				t := float64(i) / SampleRate
				note[i] *= math.Exp(-8 * t)
			}
			Add(out, note, step*stepN)
		}
		return out
	})
}

// BassSynth renders the synth bass: sine plus half-amplitude second
// harmonic, with a linear decay from 1 to 0.6 across the bar.
func BassSynth(progression []float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBars(progression, tempoBPM, totalSeconds, func(_ int, freq float64, barN int) []float64 {
		dur := float64(barN) / SampleRate
		fund := Sine(freq, dur, 1.0)
		harm := Scale(Sine(freq*2, dur, 1.0), 0.5)
		voice := Mix(fund, harm)
		for i := range voice {
			p := float64(i) / float64(barN)
			decay := 1 - 0.4*p
			voice[i] *= decay
		}
		return voice
	})
}
