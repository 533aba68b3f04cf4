package synth

import "math"

// walkBarChords renders one buffer per bar, one triad (three voiced
// pitches) per bar, cycling through chords.
func walkBarChords(chords [][]float64, tempoBPM, totalSeconds float64, render func(chord []float64, barSamples int) []float64) []float64 {
	total := numSamples(totalSeconds)
	out := make([]float64, total)
	barN := numSamples(barSeconds(tempoBPM))
	if barN <= 0 || len(chords) == 0 {
		return out
	}

	for pos, bar := 0, 0; pos < total; pos, bar = pos+barN, bar+1 {
		chord := chords[bar%len(chords)]
		remaining := total - pos
		n := barN
		if n > remaining {
			n = remaining
		}
		buf := render(chord, barN)
		if len(buf) > n {
			buf = buf[:n]
		}
		Add(out, buf, pos)
	}
	return out
}

// PadDarkAnalog renders triple detuned saws per voice shaped by a filter
// envelope, gain ~0.08 per voice.
func PadDarkAnalog(chords [][]float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBarChords(chords, tempoBPM, totalSeconds, func(chord []float64, barN int) []float64 {
		dur := float64(barN) / SampleRate
		voice := make([]float64, barN)
		for _, f := range chord {
			s1 := Saw(f*0.997, dur, 1.0)
			s2 := Saw(f, dur, 1.0)
			s3 := Saw(f*1.003, dur, 1.0)
			avg := make([]float64, barN)
			for i := 0; i < barN && i < len(s1); i++ {
				avg[i] = (s1[i] + s2[i] + s3[i]) / 3
				t := float64(i) / SampleRate
				avg[i] *= 0.3 + 0.4*math.Exp(-0.5*t)
			}
			Add(voice, Scale(avg, 0.08), 0)
		}
		return voice
	})
}

// PadBrightDigitalFM renders a 2-operator FM pad plus inharmonic partials.
func PadBrightDigitalFM(chords [][]float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBarChords(chords, tempoBPM, totalSeconds, func(chord []float64, barN int) []float64 {
		dur := float64(barN) / SampleRate
		voice := make([]float64, barN)
		for _, f := range chord {
			carrier := make([]float64, barN)
			phase := 0.0
			for i := 0; i < barN; i++ {
				t := float64(i) / SampleRate
				modIndex := 2 * math.Exp(-1.5*t)
				modulator := math.Sin(2 * math.Pi * 2.01 * f * t)
				phase += 2 * math.Pi * f / SampleRate
				carrier[i] = math.Sin(phase + modIndex*modulator)
			}
			partialA := Sine(2.76*f, dur, 1.0)
			for i := range partialA {
				t := float64(i) / SampleRate
				partialA[i] *= math.Exp(-3 * t)
			}
			partialB := Sine(5.40*f, dur, 1.0)
			for i := range partialB {
				t := float64(i) / SampleRate
				partialB[i] *= math.Exp(-5 * t)
			}
			voiceSum := Mix(carrier, partialA, partialB)
			Add(voice, Scale(voiceSum, 0.07), 0)
		}
		return voice
	})
}

// PadWarmAnalog renders two detuned saws averaged plus a second-harmonic
// sine, gain ~0.09.
func PadWarmAnalog(chords [][]float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBarChords(chords, tempoBPM, totalSeconds, func(chord []float64, barN int) []float64 {
		dur := float64(barN) / SampleRate
		voice := make([]float64, barN)
		for _, f := range chord {
			s1 := Saw(f*0.999, dur, 1.0)
			s2 := Saw(f*1.001, dur, 1.0)
			avg := make([]float64, barN)
			for i := 0; i < barN && i < len(s1); i++ {
				avg[i] = (s1[i] + s2[i]) / 2
			}
			harm2 := Scale(Sine(f*2, dur, 1.0), 0.2)
			Add(voice, Scale(Mix(avg, harm2), 0.09), 0)
		}
		return voice
	})
}

// PadMetallicRingMod renders sin(f)*sin(1.414f) plus 0.3*sin(3.14f), gain
// ~0.06.
func PadMetallicRingMod(chords [][]float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBarChords(chords, tempoBPM, totalSeconds, func(chord []float64, barN int) []float64 {
		voice := make([]float64, barN)
		for _, f := range chord {
			ring := make([]float64, barN)
			for i := 0; i < barN; i++ {
				t := float64(i) / SampleRate
				ring[i] = math.Sin(2*math.Pi*f*t)*math.Sin(2*math.Pi*1.414*f*t) + 0.3*math.Sin(2*math.Pi*3.14*f*t)
			}
			Add(voice, Scale(ring, 0.06), 0)
		}
		return voice
	})
}

// PadOrchestral renders filtered sawtooth blended with sine (0.4/0.6),
// squared linear attack over 300ms.
func PadOrchestral(chords [][]float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBarChords(chords, tempoBPM, totalSeconds, func(chord []float64, barN int) []float64 {
		dur := float64(barN) / SampleRate
		voice := make([]float64, barN)
		attackN := numSamples(0.3)
		for _, f := range chord {
			saw := LowPass(Saw(f, dur, 1.0), 0.2)
			sine := Sine(f, dur, 1.0)
			blend := make([]float64, barN)
			for i := 0; i < barN && i < len(saw); i++ {
				blend[i] = 0.4*saw[i] + 0.6*sine[i]
				if i < attackN {
					p := float64(i) / float64(attackN)
					blend[i] *= p * p
				}
			}
			Add(voice, Scale(blend, 0.08), 0)
		}
		return voice
	})
}

// PadCleanSine renders a pure sine per voice, gain ~0.08.
func PadCleanSine(chords [][]float64, tempoBPM, totalSeconds float64) []float64 {
	return walkBarChords(chords, tempoBPM, totalSeconds, func(chord []float64, barN int) []float64 {
		dur := float64(barN) / SampleRate
		voice := make([]float64, barN)
		for _, f := range chord {
			Add(voice, Scale(Sine(f, dur, 1.0), 0.08), 0)
		}
		return voice
	})
}
