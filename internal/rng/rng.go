// Package rng derives per-level random streams from a world seed.
package rng

import (
	"math/rand"
	"time"
)

// LevelSeed is the composite key a level is generated from.
func LevelSeed(worldSeed int64, level int) int64 {
	return worldSeed + int64(level)
}

// ForLevel returns a fresh generator for the given level. Two calls with the
// same arguments yield identical, independent streams.
func ForLevel(worldSeed int64, level int) *rand.Rand {
	return rand.New(rand.NewSource(LevelSeed(worldSeed, level)))
}

// NewSeed returns a time-derived seed for sessions started without one.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// RandInt returns a uniform integer in [lo, hi]. hi < lo returns lo.
func RandInt(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Roll sums count rolls of a sides-sided die.
func Roll(r *rand.Rand, count, sides int) int {
	if sides < 1 {
		return 0
	}
	total := 0
	for i := 0; i < count; i++ {
		total += r.Intn(sides) + 1
	}
	return total
}

// Chance reports true with probability pct/100.
func Chance(r *rand.Rand, pct int) bool {
	return r.Intn(100) < pct
}
