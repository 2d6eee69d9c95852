package rng

import (
	"math"
	"strings"
	"unicode/utf16"
)

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619

	// mulberryIncrement is the Weyl-sequence step of mulberry32.
	mulberryIncrement uint32 = 0x6D2B79F5

	twoPow32 = 4294967296.0

	// KeySep joins the parts of a seed key, e.g. "Q7|jitter|42".
	KeySep = "|"
)

// Hash32 is 32-bit FNV-1a over the UTF-16 code units of s.
// For ASCII keys this equals byte-wise FNV-1a.
//
// Complexity: O(len(s)).
func Hash32(s string) uint32 {
	h := fnvOffset32
	for _, u := range utf16.Encode([]rune(s)) {
		h ^= uint32(u)
		h *= fnvPrime32
	}

	return h
}

// Key joins seed-key parts with KeySep.
func Key(parts ...string) string {
	return strings.Join(parts, KeySep)
}

// Stream is a mulberry32 pseudo-random stream.
// The zero value is a valid stream seeded with 0.
type Stream struct {
	state uint32
}

// NewStream returns a stream seeded with seed.
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// FromKey returns NewStream(Hash32(key)).
func FromKey(key string) *Stream {
	return NewStream(Hash32(key))
}

// Uint32 advances the stream and returns the next 32 raw bits.
func (s *Stream) Uint32() uint32 {
	s.state += mulberryIncrement
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)

	return t ^ (t >> 14)
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.Uint32()) / twoPow32
}

// Intn returns floor(Float64()*n), i.e. a value in [0, n) for n > 0.
// For n <= 0 it returns 0 without advancing the stream.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}

	return i
}

// Normal returns a standard normal deviate (Box–Muller, cosine branch).
// It consumes two uniform draws; a draw of exactly 0 is re-drawn so the
// logarithm never sees 0.
func (s *Stream) Normal() float64 {
	var u, v float64
	for u == 0 {
		u = s.Float64()
	}
	for v == 0 {
		v = s.Float64()
	}

	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// Symmetric returns a value in [-1, 1): 2*Float64() - 1.
func (s *Stream) Symmetric() float64 {
	return s.Float64()*2 - 1
}
