package system

import (
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

// ComputeFOV resets visibility and casts a Bresenham ray from the origin to
// every tile within radius. A ray marks each cell it crosses visible and
// explored, and stops after the first cell that blocks sight.
func ComputeFOV(gmap *gamemap.GameMap, ox, oy, radius int) {
	gmap.ClearVisible()
	if !gmap.InBounds(ox, oy) {
		return
	}
	origin := gmap.At(ox, oy)
	origin.Visible = true
	origin.Explored = true

	rr := radius * radius
	for ty := max(0, oy-radius); ty <= min(gmap.Height-1, oy+radius); ty++ {
		for tx := max(0, ox-radius); tx <= min(gmap.Width-1, ox+radius); tx++ {
			dx, dy := tx-ox, ty-oy
			if dx*dx+dy*dy > rr {
				continue
			}
			castRay(gmap, ox, oy, tx, ty)
		}
	}
}

func castRay(gmap *gamemap.GameMap, ox, oy, tx, ty int) {
	for _, p := range Line(ox, oy, tx, ty)[1:] {
		if !gmap.InBounds(p.X, p.Y) {
			return
		}
		t := gmap.At(p.X, p.Y)
		t.Visible = true
		t.Explored = true
		if t.Kind.BlocksSight() {
			return
		}
	}
}

// UpdateFOV recomputes visibility around an entity's position.
func UpdateFOV(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, radius int) {
	c := w.Get(id, component.CPosition)
	if c == nil {
		gmap.ClearVisible()
		return
	}
	pos := c.(component.Position)
	ComputeFOV(gmap, pos.X, pos.Y, radius)
}

// Line returns the Bresenham line from (x0,y0) to (x1,y1), both ends included.
func Line(x0, y0, x1, y1 int) []gamemap.Point {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy

	pts := make([]gamemap.Point, 0, max(dx, -dy)+1)
	x, y := x0, y0
	for {
		pts = append(pts, gamemap.Point{X: x, Y: y})
		if x == x1 && y == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
