package system

import (
	"cmp"
	"slices"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

const (
	costOrthogonal = 1.0
	costDiagonal   = 1.4
)

var directions = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

type pathNode struct {
	p   gamemap.Point
	f   float64
	seq int
}

// blockedTiles returns the positions of blocking entities on this level.
func blockedTiles(w *ecs.World, gmap *gamemap.GameMap) mapset.Set[gamemap.Point] {
	blocked := mapset.New[gamemap.Point]()
	for _, id := range gmap.Entities {
		if !w.Has(id, component.CTagBlocking) {
			continue
		}
		if p, ok := PositionOf(w, id); ok {
			blocked.Put(gamemap.Point{X: p.X, Y: p.Y})
		}
	}
	return blocked
}

func manhattan(a, b gamemap.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// FindPath runs A* from start to goal over 8 directions and returns the steps
// to take, excluding start and including goal. The goal may hold a blocking
// entity; every other occupied tile is impassable. An unreachable goal, or
// start == goal, yields nil.
func FindPath(w *ecs.World, gmap *gamemap.GameMap, start, goal gamemap.Point) []gamemap.Point {
	if start == goal || !gmap.IsWalkable(goal.X, goal.Y) {
		return nil
	}
	blocked := blockedTiles(w, gmap)

	seq := 0
	open := heap.New(func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	closed := mapset.New[gamemap.Point]()
	g := map[gamemap.Point]float64{start: 0}
	from := map[gamemap.Point]gamemap.Point{}

	open.Push(pathNode{p: start, f: float64(manhattan(start, goal))})
	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.p == goal {
			return rebuildPath(from, start, goal)
		}
		if closed.Has(cur.p) {
			continue
		}
		closed.Put(cur.p)

		for i, d := range directions {
			n := gamemap.Point{X: cur.p.X + d[0], Y: cur.p.Y + d[1]}
			if closed.Has(n) || !gmap.IsWalkable(n.X, n.Y) {
				continue
			}
			if n != goal && blocked.Has(n) {
				continue
			}
			step := costOrthogonal
			if i >= 4 {
				step = costDiagonal
			}
			cost := g[cur.p] + step
			if old, seen := g[n]; seen && cost >= old {
				continue
			}
			g[n] = cost
			from[n] = cur.p
			seq++
			open.Push(pathNode{p: n, f: cost + float64(manhattan(n, goal)), seq: seq})
		}
	}
	return nil
}

func rebuildPath(from map[gamemap.Point]gamemap.Point, start, goal gamemap.Point) []gamemap.Point {
	var rev []gamemap.Point
	for p := goal; p != start; p = from[p] {
		rev = append(rev, p)
	}
	path := make([]gamemap.Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// FrontierTiles lists unexplored walkable tiles in row-major order. With
// adjacentToExplored set, only tiles with an explored, unblocked 8-neighbour
// are kept.
func FrontierTiles(w *ecs.World, gmap *gamemap.GameMap, adjacentToExplored bool) []gamemap.Point {
	var blocked mapset.Set[gamemap.Point]
	if adjacentToExplored {
		blocked = blockedTiles(w, gmap)
	}
	var out []gamemap.Point
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			t := gmap.At(x, y)
			if t.Explored || !t.Kind.Walkable() {
				continue
			}
			if adjacentToExplored && !nextToExplored(gmap, blocked, x, y) {
				continue
			}
			out = append(out, gamemap.Point{X: x, Y: y})
		}
	}
	return out
}

func nextToExplored(gmap *gamemap.GameMap, blocked mapset.Set[gamemap.Point], x, y int) bool {
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		if !gmap.InBounds(nx, ny) {
			continue
		}
		if gmap.At(nx, ny).Explored && gmap.IsWalkable(nx, ny) && !blocked.Has(gamemap.Point{X: nx, Y: ny}) {
			return true
		}
	}
	return false
}

// NearestFrontier picks the adjacent frontier tile closest to from by
// Manhattan distance; ties go to the earliest in scan order.
func NearestFrontier(w *ecs.World, gmap *gamemap.GameMap, from gamemap.Point) (gamemap.Point, bool) {
	best, bestDist, found := gamemap.Point{}, 0, false
	for _, p := range FrontierTiles(w, gmap, true) {
		if d := manhattan(from, p); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}

// FrontierByDistance returns up to limit adjacent frontier tiles sorted by
// Manhattan distance from from, keeping scan order for ties.
func FrontierByDistance(w *ecs.World, gmap *gamemap.GameMap, from gamemap.Point, limit int) []gamemap.Point {
	tiles := FrontierTiles(w, gmap, true)
	slices.SortStableFunc(tiles, func(a, b gamemap.Point) int {
		return cmp.Compare(manhattan(from, a), manhattan(from, b))
	})
	if len(tiles) > limit {
		tiles = tiles[:limit]
	}
	return tiles
}
