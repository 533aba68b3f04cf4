package synth

// ADSR renders an attack/decay/sustain/release amplitude envelope of exactly
// totalSamples length. If attack+decay+release exceeds totalSamples, attack
// is applied up to its own length, then decay, then a linear ramp to zero
// fills whatever remains — there is no sustain plateau in that case.
func ADSR(attackSeconds, decaySeconds, sustainLevel, releaseSeconds float64, totalSamples int) []float64 {
	out := make([]float64, totalSamples)
	if totalSamples == 0 {
		return out
	}

	attackN := numSamples(attackSeconds)
	decayN := numSamples(decaySeconds)
	releaseN := numSamples(releaseSeconds)

	if attackN+decayN+releaseN > totalSamples {
		i := 0
		for ; i < attackN && i < totalSamples; i++ {
			out[i] = float64(i) / float64(attackN)
		}
		decayEnd := i + decayN
		for ; i < decayEnd && i < totalSamples; i++ {
			p := float64(i-attackN) / float64(decayN)
			out[i] = 1 - p*(1-sustainLevel)
		}
		remaining := totalSamples - i
		start := sustainLevel
		if i == attackN {
			// decay had zero length; ramp still starts from the attack peak
			start = 1
		}
		for j := 0; i < totalSamples; i, j = i+1, j+1 {
			if remaining <= 1 {
				out[i] = 0
				continue
			}
			out[i] = start * (1 - float64(j)/float64(remaining-1))
		}
		return out
	}

	sustainN := totalSamples - attackN - decayN - releaseN

	i := 0
	for ; i < attackN; i++ {
		out[i] = float64(i) / float64(attackN)
	}
	for j := 0; j < decayN; j, i = j+1, i+1 {
		p := float64(j) / float64(decayN)
		out[i] = 1 - p*(1-sustainLevel)
	}
	for j := 0; j < sustainN; j, i = j+1, i+1 {
		out[i] = sustainLevel
	}
	for j := 0; j < releaseN; j, i = j+1, i+1 {
		p := float64(j) / float64(releaseN)
		out[i] = sustainLevel * (1 - p)
	}
	return out
}

// ApplyEnvelope multiplies x by env sample-by-sample, truncating to the
// shorter of the two buffers.
func ApplyEnvelope(x, env []float64) []float64 {
	n := len(x)
	if len(env) < n {
		n = len(env)
	}
	out := make([]float64, len(x))
	for i := 0; i < n; i++ {
		out[i] = x[i] * env[i]
	}
	return out
}
