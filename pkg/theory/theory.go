// Package theory implements the music-theory helpers the render pipeline
// needs: scale degrees, key-to-root-frequency mapping, and Roman-numeral
// chord construction over a scale.
package theory

import (
	"math"
	"strings"
)

// Scale names.
const (
	NaturalMinor = "natural_minor"
	Major        = "major"
	Dorian       = "dorian"
)

// ScaleDegrees returns the semitone offsets from the root for the named
// scale, defaulting to natural minor when the name is unrecognised.
func ScaleDegrees(name string) []int {
	switch name {
	case Major:
		return []int{0, 2, 4, 5, 7, 9, 11}
	case Dorian:
		return []int{0, 2, 3, 5, 7, 9, 10}
	default:
		return []int{0, 2, 3, 5, 7, 8, 10}
	}
}

var keyRoots = map[byte]float64{
	'A': 220.0,
	'C': 261.63,
	'D': 293.66,
	'F': 349.23,
	'G': 392.0,
}

// RootFromKey parses a key string such as "D minor" or "F major" and
// returns (rootFrequencyHz, scaleName). Unknown or empty first characters
// default to A = 220.0; the major/minor quality is chosen by a
// case-insensitive substring match, defaulting to natural minor.
func RootFromKey(key string) (float64, string) {
	root := 220.0
	trimmed := strings.TrimSpace(key)
	if len(trimmed) > 0 {
		c := byte(trimmed[0])
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if f, ok := keyRoots[c]; ok {
			root = f
		}
	}

	lower := strings.ToLower(key)
	scale := NaturalMinor
	if strings.Contains(lower, "major") {
		scale = Major
	} else if strings.Contains(lower, "dorian") {
		scale = Dorian
	}
	return root, scale
}

var romanDegree = map[string]int{
	"i": 0, "I": 0,
	"ii": 1, "II": 1,
	"iii": 2, "III": 2,
	"iv": 3, "IV": 3,
	"v": 4, "V": 4,
	"vi": 5, "VI": 5,
	"vii": 6, "VII": 6,
}

// RomanToTriad decodes a Roman-numeral chord name into three semitone
// offsets at scale degrees {d, d+2, d+4} (mod the scale length), wrapping
// octaves up so root <= third <= fifth.
func RomanToTriad(numeral string, scale []int) [3]int {
	degree, ok := romanDegree[numeral]
	if !ok {
		degree = 0
	}
	n := len(scale)
	if n == 0 {
		return [3]int{0, 0, 0}
	}

	root := scale[degree%n]
	third := scale[(degree+2)%n]
	fifth := scale[(degree+4)%n]

	if third < root {
		third += 12
	}
	if fifth < root {
		fifth += 12
	}
	if fifth < third {
		fifth += 12
	}
	return [3]int{root, third, fifth}
}

// IsMinorQuality reports whether a numeral denotes a minor-quality chord
// (lowercase) as opposed to major (uppercase).
func IsMinorQuality(numeral string) bool {
	return len(numeral) > 0 && numeral[0] >= 'a' && numeral[0] <= 'z'
}

// ChordProgressionRoot returns the default four-chord root-degree
// progression over a scale: scale[0], scale[3], scale[1], scale[0].
func ChordProgressionRoot(scale []int) [4]int {
	if len(scale) < 4 {
		return [4]int{0, 0, 0, 0}
	}
	return [4]int{scale[0], scale[3], scale[1], scale[0]}
}

// DegreeToFrequency converts a semitone offset from root (possibly outside
// one octave) into a frequency given the root frequency.
func DegreeToFrequency(rootFreq float64, semitoneOffset int) float64 {
	return rootFreq * math.Pow(2, float64(semitoneOffset)/12.0)
}
