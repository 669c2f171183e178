package generate

import (
	"testing"

	"crimson-depths/assets"
	"crimson-depths/internal/gamemap"
)

func townConfig(seed int64) *Config {
	cfg := defaultTestConfig(seed, 0)
	return cfg
}

func TestTownLayout(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := townConfig(seed)
		gmap := Town(cfg)
		plaza := PlazaRect(cfg.MapWidth, cfg.MapHeight)

		if len(gmap.Buildings) != len(gamemap.ShopTypes) {
			t.Fatalf("seed=%d: got %d buildings, want %d", seed, len(gmap.Buildings), len(gamemap.ShopTypes))
		}
		for i, b := range gmap.Buildings {
			if b.Intersects(plaza.Expand(plazaBuffer)) {
				t.Errorf("seed=%d: %s crowds the plaza", seed, b.Name)
			}
			for j := i + 1; j < len(gmap.Buildings); j++ {
				if b.Expand(buildingBuffer).Intersects(gmap.Buildings[j].Rect) {
					t.Errorf("seed=%d: %s and %s closer than %d tiles", seed, b.Name, gmap.Buildings[j].Name, buildingBuffer)
				}
			}
		}
	}
}

func TestTownDoors(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := Town(townConfig(seed))
		for _, b := range gmap.Buildings {
			d := b.Door
			onEdge := d.X == b.X1 || d.X == b.X2 || d.Y == b.Y1 || d.Y == b.Y2
			corner := (d.X == b.X1 || d.X == b.X2) && (d.Y == b.Y1 || d.Y == b.Y2)
			if !onEdge || corner {
				t.Errorf("seed=%d: %s door %+v not on a side", seed, b.Name, d)
			}
			if !gmap.IsWalkable(d.X, d.Y) {
				t.Errorf("seed=%d: %s door is not walkable", seed, b.Name)
			}

			// Exactly one opening in the wall ring.
			openings := 0
			for y := b.Y1; y <= b.Y2; y++ {
				for x := b.X1; x <= b.X2; x++ {
					if (x == b.X1 || x == b.X2 || y == b.Y1 || y == b.Y2) && gmap.Kind(x, y) != gamemap.TileTownWall {
						openings++
					}
				}
			}
			if openings != 1 {
				t.Errorf("seed=%d: %s has %d openings", seed, b.Name, openings)
			}
		}
	}
}

func TestTownExploredWithSingleStairs(t *testing.T) {
	cfg := townConfig(3)
	gmap := Town(cfg)

	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if !gmap.At(x, y).Explored {
				t.Fatalf("tile (%d,%d) unexplored in town", x, y)
			}
		}
	}
	if countKind(gmap, gamemap.TileStairsDown) != 1 {
		t.Errorf("town needs exactly one down staircase")
	}
	if gmap.UpStairs != nil || countKind(gmap, gamemap.TileStairsUp) != 0 {
		t.Errorf("town must not have an up staircase")
	}
	cx, cy := PlazaRect(cfg.MapWidth, cfg.MapHeight).Center()
	if gmap.DownStairs == nil || gmap.DownStairs.X != cx || gmap.DownStairs.Y != cy {
		t.Errorf("down staircase = %v, want plaza center (%d,%d)", gmap.DownStairs, cx, cy)
	}
}

func TestTownReachable(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := Town(townConfig(seed))
		reached := flood(gmap, gmap.DownStairs.X, gmap.DownStairs.Y)
		for _, b := range gmap.Buildings {
			cx, cy := b.Center()
			if !reached[gamemap.Point{X: cx, Y: cy}] {
				t.Errorf("seed=%d: %s interior unreachable from the plaza", seed, b.Name)
			}
		}
	}
}

func TestPopulateTown(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := townConfig(seed)
		gmap := Town(cfg)
		res := PopulateTown(gmap, cfg)

		if len(res.Shops) != len(gmap.Buildings) {
			t.Fatalf("seed=%d: %d shops for %d buildings", seed, len(res.Shops), len(gmap.Buildings))
		}
		perShop := map[string]int{}
		occupied := map[gamemap.Point]string{}
		for _, it := range res.Stock {
			p := gamemap.Point{X: it.X, Y: it.Y}
			if prev, dup := occupied[p]; dup {
				t.Errorf("seed=%d: %s and %s share tile %v", seed, prev, it.Key, p)
			}
			occupied[p] = it.Key
			if !it.Unpaid {
				t.Errorf("seed=%d: shop stock %s not marked unpaid", seed, it.Key)
			}
			b, ok := gmap.BuildingAt(it.X, it.Y)
			if !ok {
				t.Errorf("seed=%d: stock %s at (%d,%d) outside any shop", seed, it.Key, it.X, it.Y)
				continue
			}
			found := false
			for _, k := range assets.ShopPools[b.Name] {
				if k == it.Key {
					found = true
				}
			}
			if !found {
				t.Errorf("seed=%d: %s sells %s which is not in its pool", seed, b.Name, it.Key)
			}
			perShop[b.Name]++
		}
		for _, b := range gmap.Buildings {
			if n := perShop[b.Name]; n < minStock || n > maxStock {
				t.Errorf("seed=%d: %s stocked %d items", seed, b.Name, n)
			}
		}
	}
}

func TestPickFreeFallsBackToScan(t *testing.T) {
	cfg := townConfig(1)
	bounds := gamemap.Rect{X1: 3, Y1: 3, X2: 4, Y2: 4}
	used := map[gamemap.Point]bool{{X: 3, Y: 3}: true, {X: 4, Y: 3}: true, {X: 4, Y: 4}: true}

	// One free tile in four: random tries may all miss, the scan must not.
	for _n := 0; _n < 50; _n++ {
		p, ok := pickFree(bounds, used, cfg)
		if !ok || p != (gamemap.Point{X: 3, Y: 4}) {
			t.Fatalf("pickFree = %v, %v; want (3,4)", p, ok)
		}
	}

	used[gamemap.Point{X: 3, Y: 4}] = true
	if p, ok := pickFree(bounds, used, cfg); ok {
		t.Errorf("full room yielded %v", p)
	}
}
