// Package synth implements the waveform primitives and instrument voices
// that make up the procedural synthesis engine. Every generator here is a
// pure function of its parameters plus, where noise is involved, the next
// draw from a caller-supplied prng.Stream: nothing carries state between
// calls, so two calls with identical arguments and stream position produce
// identical buffers.
package synth

import "math"

// SampleRate is the fixed sample rate every buffer in this engine is built
// at. Every duration-to-sample-count conversion in the package uses this
// constant.
const SampleRate = 44100

// frac returns the fractional part of x, always in [0, 1).
func frac(x float64) float64 {
	return x - math.Floor(x)
}

func numSamples(durationSeconds float64) int {
	return int(math.Round(durationSeconds * SampleRate))
}

// Sine renders a pure sine tone.
func Sine(frequency, durationSeconds, volume float64) []float64 {
	n := numSamples(durationSeconds)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		out[i] = volume * math.Sin(2*math.Pi*frequency*t)
	}
	return out
}

// Saw renders a naive (aliased) sawtooth. The aliasing is intentional — it
// is part of the intended 80s character of the engine.
func Saw(frequency, durationSeconds, volume float64) []float64 {
	n := numSamples(durationSeconds)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		out[i] = volume * (2*frac(frequency*t) - 1)
	}
	return out
}

// Square renders a pulse wave with the given duty cycle (0..1, 0.5 = square).
func Square(frequency, durationSeconds, volume, duty float64) []float64 {
	n := numSamples(durationSeconds)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		if frac(frequency*t) < duty {
			out[i] = volume
		} else {
			out[i] = -volume
		}
	}
	return out
}

// Noise renders white noise drawn from stream, scaled by volume.
func Noise(durationSeconds, volume float64, stream Noiser) []float64 {
	n := numSamples(durationSeconds)
	out := make([]float64, n)
	for i := range out {
		out[i] = volume * stream.Float64()
	}
	return out
}

// Noiser is the minimal interface synth needs from a noise source, satisfied
// by *prng.Stream without importing it directly (keeps synth leaf-level).
type Noiser interface {
	Float64() float64
}

// LowPass applies a one-pole IIR low-pass filter and returns the result as
// a new buffer; x is not modified. Lower c means more filtering.
func LowPass(x []float64, c float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = c*x[i] + (1-c)*out[i-1]
	}
	return out
}

// HighPass approximates a first-difference high-pass filter by subtracting
// a heavily-weighted low-pass copy of the signal.
func HighPass(x []float64, c float64) []float64 {
	lp := LowPass(x, c)
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - lp[i]*0.8
	}
	return out
}

// Mix sums buffers of possibly different lengths into a new buffer sized to
// the longest input.
func Mix(buffers ...[]float64) []float64 {
	maxLen := 0
	for _, b := range buffers {
		if len(b) > maxLen {
			maxLen = len(b)
		}
	}
	out := make([]float64, maxLen)
	for _, b := range buffers {
		for i, v := range b {
			out[i] += v
		}
	}
	return out
}

// Scale multiplies every sample of x by gain, returning a new buffer.
func Scale(x []float64, gain float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * gain
	}
	return out
}

// Add accumulates src into dst starting at offset, truncating src if it
// would run past the end of dst. Negative offset or an offset beyond dst is
// a no-op.
func Add(dst []float64, src []float64, offset int) {
	if offset >= len(dst) || offset < 0 {
		return
	}
	end := offset + len(src)
	if end > len(dst) {
		end = len(dst)
	}
	for i := offset; i < end; i++ {
		dst[i] += src[i-offset]
	}
}
