package system

import (
	"math/rand"
	"testing"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

func TestFOVOriginAlwaysVisible(t *testing.T) {
	gmap := openMap(20, 20)
	ComputeFOV(gmap, 5, 5, 5)

	if !gmap.At(5, 5).Visible {
		t.Error("origin must always be visible")
	}
	if !gmap.At(5, 5).Explored {
		t.Error("origin must be marked explored")
	}
}

func TestFOVClearsOldVisibility(t *testing.T) {
	gmap := openMap(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			gmap.At(x, y).Visible = true
		}
	}
	ComputeFOV(gmap, 5, 5, 3)

	if gmap.At(19, 19).Visible {
		t.Error("ComputeFOV should clear stale visibility before recalculating")
	}
}

func TestFOVRadiusBound(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		gmap := openMap(30, 30)
		for _n := 0; _n < 120; _n++ {
			gmap.Set(r.Intn(30), r.Intn(30), gamemap.TileWall)
		}
		ox, oy, radius := 15, 15, 4+int(seed)
		gmap.Set(ox, oy, gamemap.TileFloor)
		ComputeFOV(gmap, ox, oy, radius)

		for y := 0; y < 30; y++ {
			for x := 0; x < 30; x++ {
				dx, dy := x-ox, y-oy
				if gmap.At(x, y).Visible && dx*dx+dy*dy > radius*radius {
					t.Errorf("seed=%d: (%d,%d) visible beyond radius %d", seed, x, y, radius)
				}
			}
		}
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	gmap := openMap(20, 20)
	gmap.Set(10, 8, gamemap.TileWall)
	ComputeFOV(gmap, 10, 10, 8)

	if !gmap.At(10, 8).Visible {
		t.Error("the wall tile at (10,8) should be visible")
	}
	if gmap.At(10, 7).Visible {
		t.Error("tile (10,7) behind the wall at (10,8) should not be visible")
	}
	if gmap.At(10, 7).Explored {
		t.Error("tile (10,7) behind the wall should stay unexplored")
	}
}

func TestFOVTownWallBlocksLight(t *testing.T) {
	gmap := gamemap.NewFilled(20, 20, gamemap.TileGrass)
	gmap.Set(5, 10, gamemap.TileTownWall)
	ComputeFOV(gmap, 8, 10, 10)
	if gmap.At(3, 10).Visible {
		t.Error("town walls must block sight")
	}
}

func TestUpdateFOVNoPositionNoPanic(t *testing.T) {
	gmap := openMap(10, 10)
	w := ecs.NewWorld()
	id := w.CreateEntity()
	UpdateFOV(w, gmap, id, 5)

	w.Add(id, component.Position{X: 2, Y: 2})
	UpdateFOV(w, gmap, id, 5)
	if !gmap.IsVisible(2, 2) {
		t.Error("UpdateFOV should light the entity's tile")
	}
}

func TestLineEndpoints(t *testing.T) {
	cases := []struct {
		x0, y0, x1, y1 int
		n              int
	}{
		{0, 0, 5, 0, 6},
		{0, 0, 0, -4, 5},
		{2, 2, 5, 5, 4},
		{0, 0, 6, 2, 7},
		{3, 3, 3, 3, 1},
	}
	for _, c := range cases {
		pts := Line(c.x0, c.y0, c.x1, c.y1)
		if len(pts) != c.n {
			t.Errorf("Line(%d,%d,%d,%d) has %d points, want %d", c.x0, c.y0, c.x1, c.y1, len(pts), c.n)
			continue
		}
		if pts[0] != (gamemap.Point{X: c.x0, Y: c.y0}) || pts[len(pts)-1] != (gamemap.Point{X: c.x1, Y: c.y1}) {
			t.Errorf("Line(%d,%d,%d,%d) endpoints = %v..%v", c.x0, c.y0, c.x1, c.y1, pts[0], pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			if abs(pts[i].X-pts[i-1].X) > 1 || abs(pts[i].Y-pts[i-1].Y) > 1 {
				t.Errorf("Line(%d,%d,%d,%d) jumps between %v and %v", c.x0, c.y0, c.x1, c.y1, pts[i-1], pts[i])
			}
		}
	}
}
