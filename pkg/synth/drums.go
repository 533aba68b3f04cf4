package synth

import "math"

// pitchEnvelopeSine renders a sine carrier whose instantaneous frequency
// follows freqAt(t), by integrating phase from per-sample frequency rather
// than using a fixed carrier frequency.
func pitchEnvelopeSine(n int, freqAt func(t float64) float64, ampAt func(t float64) float64, volume float64) []float64 {
	out := make([]float64, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		phase += 2 * math.Pi * freqAt(t) / SampleRate
		out[i] = volume * ampAt(t) * math.Sin(phase)
	}
	return out
}

// Kick808 renders the 808-style kick: 0.4s, pitch envelope
// 180*e^(-6t)+35, amplitude e^(-4.5t), plus a sub-octave layer, a 2ms click
// and a noise tail.
func Kick808(stream Noiser) []float64 {
	const dur = 0.4
	n := numSamples(dur)

	freqAt := func(t float64) float64 { return 180*math.Exp(-6*t) + 35 }
	ampAt := func(t float64) float64 { return math.Exp(-4.5 * t) }
	carrier := pitchEnvelopeSine(n, freqAt, ampAt, 1.0)

	subFreqAt := func(t float64) float64 { return freqAt(t) / 2 }
	sub := pitchEnvelopeSine(n, subFreqAt, ampAt, 0.3)

	click := make([]float64, n)
	clickN := numSamples(0.002)
	for i := 0; i < clickN && i < n; i++ {
		t := float64(i) / SampleRate
		click[i] = 0.15 * math.Exp(-t/0.0005)
	}

	noise := Noise(dur, 1.0, stream)
	for i := range noise {
		t := float64(i) / SampleRate
		noise[i] *= 0.05 * math.Exp(-50*t)
	}

	return Mix(carrier, sub, click, noise)
}

// Kick909 renders the 909-style kick: 0.18s.
func Kick909(stream Noiser) []float64 {
	const dur = 0.18
	n := numSamples(dur)

	freqAt := func(t float64) float64 { return 220*math.Exp(-12*t) + 55 }
	ampAt := func(t float64) float64 { return math.Exp(-10 * t) }
	carrier := pitchEnvelopeSine(n, freqAt, ampAt, 1.0)

	harm2FreqAt := func(t float64) float64 { return 2 * freqAt(t) }
	harm2Amp := func(t float64) float64 { return 0.15 * math.Exp(-15*t) }
	harm2 := pitchEnvelopeSine(n, harm2FreqAt, harm2Amp, 1.0)

	click := Noise(dur, 1.0, stream)
	for i := range click {
		t := float64(i) / SampleRate
		click[i] *= 0.25 * math.Exp(-600*t)
	}
	clickN := numSamples(0.003)
	if clickN < len(click) {
		for i := clickN; i < len(click); i++ {
			click[i] = 0
		}
	}

	return Mix(carrier, harm2, click)
}

// KickAcoustic renders the LinnDrum/acoustic-style kick: 0.22s.
func KickAcoustic(stream Noiser) []float64 {
	const dur = 0.22
	n := numSamples(dur)

	freqAt := func(t float64) float64 { return 140*math.Exp(-7*t) + 50 }
	ampAt := func(t float64) float64 {
		attack := 1.0
		if t < 0.005 {
			attack = math.Sqrt(t / 0.005)
		}
		return attack * math.Exp(-6*t)
	}
	carrier := pitchEnvelopeSine(n, freqAt, ampAt, 1.0)

	overtoneFreqAt := func(t float64) float64 { return 1.5 * freqAt(t) }
	overtone := pitchEnvelopeSine(n, overtoneFreqAt, ampAt, 0.1)

	texture := Noise(dur, 1.0, stream)
	for i := range texture {
		t := float64(i) / SampleRate
		texture[i] *= 0.08 * math.Exp(-30*t)
	}

	return Mix(carrier, overtone, texture)
}

// Snare808 renders the 808-style snare: 0.15s.
func Snare808(stream Noiser) []float64 {
	const dur = 0.15
	tone := Mix(Scale(Sine(180, dur, 1.0), 0.6), Scale(Sine(330, dur, 1.0), 0.6))
	noise := Noise(dur, 0.4, stream)
	body := Mix(tone, noise)
	for i := range body {
		t := float64(i) / SampleRate
		body[i] *= 0.4 * math.Exp(-25*t)
	}
	return body
}

// Snare909 renders the 909-style snare: 0.12s.
func Snare909(stream Noiser) []float64 {
	const dur = 0.12
	tone := Scale(Sine(200, dur, 1.0), 0.3)
	noise := Noise(dur, 0.7, stream)
	body := Mix(tone, noise)
	for i := range body {
		t := float64(i) / SampleRate
		body[i] *= 0.45 * math.Exp(-30*t)
	}
	return body
}

// SnareAcoustic renders the LinnDrum/acoustic-style snare: 0.18s.
func SnareAcoustic(stream Noiser) []float64 {
	const dur = 0.18
	tone := Scale(Sine(220, dur, 1.0), 0.25)
	noise := Noise(dur, 0.75, stream)
	body := Mix(tone, noise)
	for i := range body {
		t := float64(i) / SampleRate
		body[i] *= 0.4 * math.Exp(-15*t)
	}
	return body
}

// HiHat renders a 0.06s high-passed noise burst.
func HiHat(stream Noiser) []float64 {
	const dur = 0.06
	noise := Noise(dur, 1.0, stream)
	shaped := HighPass(noise, 0.3)
	for i := range shaped {
		t := float64(i) / SampleRate
		shaped[i] *= 0.18 * math.Exp(-60*t)
	}
	return shaped
}
