package system

import (
	"slices"
	"testing"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

func pathCost(start gamemap.Point, path []gamemap.Point) float64 {
	cost, prev := 0.0, start
	for _, p := range path {
		if p.X != prev.X && p.Y != prev.Y {
			cost += costDiagonal
		} else {
			cost += costOrthogonal
		}
		prev = p
	}
	return cost
}

func checkSteps(t *testing.T, gmap *gamemap.GameMap, start gamemap.Point, path []gamemap.Point) {
	t.Helper()
	prev := start
	for _, p := range path {
		if abs(p.X-prev.X) > 1 || abs(p.Y-prev.Y) > 1 || p == prev {
			t.Fatalf("path jumps from %v to %v", prev, p)
		}
		if !gmap.IsWalkable(p.X, p.Y) {
			t.Fatalf("path crosses unwalkable %v", p)
		}
		prev = p
	}
}

func TestFindPathStraightCorridor(t *testing.T) {
	gmap := gamemap.New(12, 11)
	for x := 1; x <= 10; x++ {
		gmap.Set(x, 5, gamemap.TileCorridor)
	}
	w := ecs.NewWorld()
	start, goal := gamemap.Point{X: 1, Y: 5}, gamemap.Point{X: 10, Y: 5}

	path := FindPath(w, gmap, start, goal)
	if len(path) != 9 {
		t.Fatalf("path length = %d, want 9: %v", len(path), path)
	}
	if path[len(path)-1] != goal {
		t.Errorf("path must end at the goal, ends at %v", path[len(path)-1])
	}
	if slices.Contains(path, start) {
		t.Error("path must not include the start")
	}
	checkSteps(t, gmap, start, path)
	if c := pathCost(start, path); c != 9 {
		t.Errorf("cost = %v, want 9", c)
	}
}

func TestFindPathOpenMapWithinBound(t *testing.T) {
	gmap := openMap(20, 20)
	w := ecs.NewWorld()
	start, goal := gamemap.Point{X: 2, Y: 3}, gamemap.Point{X: 12, Y: 8}

	path := FindPath(w, gmap, start, goal)
	checkSteps(t, gmap, start, path)
	if len(path) == 0 || path[len(path)-1] != goal {
		t.Fatalf("path does not reach goal: %v", path)
	}
	cheb := max(abs(goal.X-start.X), abs(goal.Y-start.Y))
	if len(path) < cheb {
		t.Errorf("path of %d steps is shorter than Chebyshev distance %d", len(path), cheb)
	}
	if c := pathCost(start, path); c > float64(manhattan(start, goal)) {
		t.Errorf("cost %v exceeds the all-orthogonal route %d", c, manhattan(start, goal))
	}
}

func TestFindPathUnreachable(t *testing.T) {
	gmap := openMap(20, 20)
	// Seal (15,15) inside a ring of walls.
	for y := 14; y <= 16; y++ {
		for x := 14; x <= 16; x++ {
			if x != 15 || y != 15 {
				gmap.Set(x, y, gamemap.TileWall)
			}
		}
	}
	w := ecs.NewWorld()
	if path := FindPath(w, gmap, gamemap.Point{X: 1, Y: 1}, gamemap.Point{X: 15, Y: 15}); len(path) != 0 {
		t.Errorf("expected no path into sealed cell, got %v", path)
	}
	if path := FindPath(w, gmap, gamemap.Point{X: 1, Y: 1}, gamemap.Point{X: 1, Y: 1}); len(path) != 0 {
		t.Errorf("start == goal should give an empty path, got %v", path)
	}
}

func TestFindPathBlockingEntities(t *testing.T) {
	gmap := gamemap.New(12, 3)
	for x := 1; x <= 10; x++ {
		gmap.Set(x, 1, gamemap.TileCorridor)
	}
	w := ecs.NewWorld()
	blocker := w.CreateEntity()
	w.Add(blocker, component.Position{X: 5, Y: 1})
	w.Add(blocker, component.TagBlocking{})
	gmap.AddEntity(blocker)

	start := gamemap.Point{X: 1, Y: 1}
	if path := FindPath(w, gmap, start, gamemap.Point{X: 10, Y: 1}); len(path) != 0 {
		t.Errorf("a blocker in a one-wide corridor should cut the path, got %v", path)
	}
	path := FindPath(w, gmap, start, gamemap.Point{X: 5, Y: 1})
	if len(path) != 4 {
		t.Errorf("the goal's own occupant must not block: got %v", path)
	}

	// Entities that are not on this level are ignored.
	gmap.RemoveEntity(blocker)
	if path := FindPath(w, gmap, start, gamemap.Point{X: 10, Y: 1}); len(path) != 9 {
		t.Errorf("off-level blocker should be ignored, got %v", path)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	gmap := openMap(20, 20)
	for y := 2; y < 18; y++ {
		gmap.Set(10, y, gamemap.TileWall)
	}
	w := ecs.NewWorld()
	a := FindPath(w, gmap, gamemap.Point{X: 3, Y: 10}, gamemap.Point{X: 17, Y: 10})
	b := FindPath(w, gmap, gamemap.Point{X: 3, Y: 10}, gamemap.Point{X: 17, Y: 10})
	if len(a) == 0 || !slices.Equal(a, b) {
		t.Errorf("paths differ between runs:\n%v\n%v", a, b)
	}
}

func TestFrontierTiles(t *testing.T) {
	gmap := openMap(5, 5)
	gmap.Set(2, 2, gamemap.TileWall)
	for y := 0; y < 5; y++ {
		gmap.At(0, y).Explored = true
	}
	w := ecs.NewWorld()

	all := FrontierTiles(w, gmap, false)
	if len(all) != 5*5-5-1 {
		t.Errorf("unfiltered frontier has %d tiles, want %d", len(all), 5*5-5-1)
	}
	adj := FrontierTiles(w, gmap, true)
	want := []gamemap.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}}
	if !slices.Equal(adj, want) {
		t.Errorf("adjacent frontier = %v, want %v", adj, want)
	}
}

func TestFrontierIgnoresBlockedNeighbours(t *testing.T) {
	gmap := openMap(5, 1)
	gmap.At(0, 0).Explored = true
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Position{X: 0, Y: 0})
	w.Add(id, component.TagBlocking{})
	gmap.AddEntity(id)

	if got := FrontierTiles(w, gmap, true); len(got) != 0 {
		t.Errorf("explored tile holding a blocker should not seed the frontier, got %v", got)
	}
}

func TestNearestFrontier(t *testing.T) {
	gmap := openMap(9, 9)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			gmap.At(x, y).Explored = true
		}
	}
	gmap.At(0, 4).Explored = false
	gmap.At(8, 4).Explored = false
	w := ecs.NewWorld()

	// Equal distance: scan order picks (0,4) since rows are scanned first.
	p, ok := NearestFrontier(w, gmap, gamemap.Point{X: 4, Y: 4})
	if !ok || p != (gamemap.Point{X: 0, Y: 4}) {
		t.Errorf("NearestFrontier = %v,%v want (0,4)", p, ok)
	}
	p, _ = NearestFrontier(w, gmap, gamemap.Point{X: 6, Y: 4})
	if p != (gamemap.Point{X: 8, Y: 4}) {
		t.Errorf("NearestFrontier = %v, want (8,4)", p)
	}

	gmap.RevealAll()
	if _, ok := NearestFrontier(w, gmap, gamemap.Point{X: 4, Y: 4}); ok {
		t.Error("fully explored map has no frontier")
	}
}

func TestFrontierByDistance(t *testing.T) {
	gmap := openMap(10, 1)
	gmap.At(0, 0).Explored = true
	gmap.At(9, 0).Explored = true
	w := ecs.NewWorld()
	got := FrontierByDistance(w, gmap, gamemap.Point{X: 9, Y: 0}, 5)
	want := []gamemap.Point{{X: 8, Y: 0}, {X: 1, Y: 0}}
	if !slices.Equal(got, want) {
		t.Errorf("FrontierByDistance = %v, want %v", got, want)
	}
}
