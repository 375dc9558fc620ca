package model

import "math/rand/v2"

// RandomSource supplies uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source; the same seed replays the same run
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// DeriveSeed mixes a base seed with a stream id so parallel runs get
// uncorrelated sources. SplitMix64 finalizer.
func DeriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
