package gamemap

import (
	"testing"

	"crimson-depths/internal/ecs"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	for _, k := range []TileKind{TileFloor, TileCorridor, TileStairsDown, TileStairsUp, TileGrass} {
		m.Set(2, 2, k)
		if !m.IsWalkable(2, 2) {
			t.Errorf("%v should be walkable", k)
		}
	}
	m.Set(2, 2, TileTownWall)
	if m.IsWalkable(2, 2) {
		t.Error("town wall should not be walkable")
	}
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestBlocksSight(t *testing.T) {
	cases := []struct {
		name string
		kind TileKind
		x, y int
		want bool
	}{
		{"wall is opaque", TileWall, 2, 2, true},
		{"town wall is opaque", TileTownWall, 2, 2, true},
		{"floor is transparent", TileFloor, 2, 2, false},
		{"grass is transparent", TileGrass, 2, 2, false},
		{"out-of-bounds x=-1", TileFloor, -1, 0, true},
		{"out-of-bounds beyond width", TileFloor, 10, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5)
			if m.InBounds(tc.x, tc.y) {
				m.Set(tc.x, tc.y, tc.kind)
			}
			if got := m.BlocksSight(tc.x, tc.y); got != tc.want {
				t.Errorf("BlocksSight(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectGeometry(t *testing.T) {
	r := NewRect(2, 3, 6, 4)
	if r.X2 != 8 || r.Y2 != 7 {
		t.Fatalf("NewRect(2,3,6,4) = %+v", r)
	}
	if cx, cy := r.Center(); cx != 5 || cy != 5 {
		t.Errorf("center = (%d,%d), want (5,5)", cx, cy)
	}
	in := r.Interior()
	if in != (Rect{3, 4, 7, 6}) {
		t.Errorf("interior = %+v", in)
	}
	if !r.Contains(2, 3) || !r.Contains(8, 7) || r.Contains(9, 7) {
		t.Error("Contains should include edges only")
	}
	if r.Expand(2) != (Rect{0, 1, 10, 9}) {
		t.Errorf("expand = %+v", r.Expand(2))
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	touching := Rect{4, 0, 6, 2}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if !a.Intersects(touching) {
		t.Error("shared edges count as intersection")
	}
}

func TestPlaceStairsKeepsOnePerKind(t *testing.T) {
	m := NewFilled(10, 10, TileFloor)
	m.PlaceStairs(TileStairsDown, 2, 2)
	m.PlaceStairs(TileStairsDown, 5, 6)
	m.PlaceStairs(TileStairsUp, 7, 7)

	if m.Kind(2, 2) != TileFloor {
		t.Error("old down stairs should revert to floor")
	}
	if m.DownStairs == nil || *m.DownStairs != (Point{5, 6}) {
		t.Fatalf("DownStairs = %v", m.DownStairs)
	}
	if m.UpStairs == nil || *m.UpStairs != (Point{7, 7}) {
		t.Fatalf("UpStairs = %v", m.UpStairs)
	}
	downs, ups := 0, 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			switch m.Kind(x, y) {
			case TileStairsDown:
				downs++
			case TileStairsUp:
				ups++
			}
		}
	}
	if downs != 1 || ups != 1 {
		t.Errorf("stairs counts down=%d up=%d, want 1 and 1", downs, ups)
	}
}

func TestEntityList(t *testing.T) {
	m := New(3, 3)
	m.AddEntity(ecs.EntityID(1))
	m.AddEntity(ecs.EntityID(2))
	m.AddEntity(ecs.EntityID(3))
	m.AddEntity(ecs.EntityID(2))
	if len(m.Entities) != 3 {
		t.Fatalf("duplicate add: %v", m.Entities)
	}
	m.RemoveEntity(ecs.EntityID(2))
	if len(m.Entities) != 2 || m.Entities[0] != 1 || m.Entities[1] != 3 {
		t.Fatalf("after remove: %v", m.Entities)
	}
	if m.HasEntity(ecs.EntityID(2)) {
		t.Error("entity 2 should be gone")
	}
}

func TestBuildingAt(t *testing.T) {
	m := NewFilled(30, 30, TileGrass)
	b := Building{Rect: NewRect(5, 5, 8, 6), Shop: ShopArmorsmith, Door: Point{9, 5}, Name: "Armorsmith"}
	m.Buildings = append(m.Buildings, b)

	if got, ok := m.BuildingAt(7, 7); !ok || got.Shop != ShopArmorsmith {
		t.Errorf("BuildingAt(7,7) = %v, %v", got, ok)
	}
	if _, ok := m.BuildingAt(9, 5); ok {
		t.Error("the door lies on the wall, outside the shop floor")
	}
}
