// Package prng provides a deterministic pseudo-random stream used by every
// noise-bearing synthesis primitive. A single Stream, seeded from the
// content hash of the render request, is threaded through the whole render
// so that two identical requests draw noise in the same order and produce
// byte-identical output.
package prng

// Stream is a linear congruential generator. It deliberately does not use
// math/rand so that the sequence is stable across Go versions.
type Stream struct {
	state uint32
}

// NewStream seeds a stream from an arbitrary seed value.
func NewStream(seed uint32) *Stream {
	if seed == 0 {
		seed = 1
	}
	return &Stream{state: seed}
}

// NewStreamFromBytes derives a 32-bit seed from a byte slice (typically an
// MD5 digest) by folding it into a uint32.
func NewStreamFromBytes(b []byte) *Stream {
	var seed uint32
	for i, c := range b {
		seed ^= uint32(c) << uint((i%4)*8)
	}
	return NewStream(seed)
}

// next advances the LCG and returns the raw 32-bit state.
func (s *Stream) next() uint32 {
	s.state = s.state*1103515245 + 12345
	return s.state
}

// Float64 returns the next pseudo-random value in [-1.0, 1.0].
func (s *Stream) Float64() float64 {
	v := int32(s.next())
	return float64(v) / float64(1<<31)
}

// Fill writes len(dst) white-noise samples into dst, in order.
func (s *Stream) Fill(dst []float64) {
	for i := range dst {
		dst[i] = s.Float64()
	}
}
