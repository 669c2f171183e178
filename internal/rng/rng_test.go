package rng

import (
	"math/rand"
	"testing"
)

func TestForLevelIsReproducible(t *testing.T) {
	for level := 0; level < 5; level++ {
		a := ForLevel(1234, level)
		b := ForLevel(1234, level)
		for i := 0; i < 50; i++ {
			if x, y := a.Int63(), b.Int63(); x != y {
				t.Fatalf("level=%d draw %d: %d != %d", level, i, x, y)
			}
		}
	}
}

func TestLevelSeedDistinguishesLevels(t *testing.T) {
	if LevelSeed(7, 1) == LevelSeed(7, 2) {
		t.Error("adjacent levels share a seed")
	}
	if LevelSeed(7, 3) != 10 {
		t.Errorf("LevelSeed(7,3) = %d, want 10", LevelSeed(7, 3))
	}
}

func TestRandIntInclusive(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := RandInt(r, 3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("RandInt(3,5) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all of 3..5 to appear, saw %v", seen)
	}
	if got := RandInt(r, 4, 4); got != 4 {
		t.Errorf("RandInt(4,4) = %d", got)
	}
}

func TestRollBounds(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		v := Roll(r, 3, 6)
		if v < 3 || v > 18 {
			t.Fatalf("3d6 = %d out of range", v)
		}
	}
	if Roll(r, 2, 0) != 0 {
		t.Error("zero-sided die should roll 0")
	}
}

func TestChanceExtremes(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	hits := 0
	for _n := 0; _n < 1000; _n++ {
		if Chance(r, 0) {
			t.Fatal("Chance(0) returned true")
		}
		if !Chance(r, 100) {
			t.Fatal("Chance(100) returned false")
		}
		if Chance(r, 50) {
			hits++
		}
	}
	if hits < 400 || hits > 600 {
		t.Errorf("Chance(50) hit %d of 1000", hits)
	}
}
