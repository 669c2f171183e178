package generate

import (
	"crimson-depths/assets"
	"crimson-depths/internal/gamemap"
	"crimson-depths/internal/logger"
	"crimson-depths/internal/rng"

	"github.com/sirupsen/logrus"
)

// Town layout constants.
const (
	buildingMinW     = 8
	buildingMaxW     = 12
	buildingMinH     = 6
	buildingMaxH     = 8
	buildingMargin   = 5
	buildingBuffer   = 3
	plazaHalf        = 3
	plazaBuffer      = 2
	buildingAttempts = 100
	minStock         = 3
	maxStock         = 6
)

// PlazaRect returns the open square around the map center.
func PlazaRect(width, height int) gamemap.Rect {
	cx, cy := width/2, height/2
	return gamemap.Rect{X1: cx - plazaHalf, Y1: cy - plazaHalf, X2: cx + plazaHalf, Y2: cy + plazaHalf}
}

// Town builds the surface hub: grass, one walled shop per shop type and a
// central plaza holding the only staircase, leading down. The whole map
// starts explored.
func Town(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.NewFilled(cfg.MapWidth, cfg.MapHeight, gamemap.TileGrass)
	gmap.Level = cfg.Level
	gmap.RevealAll()
	r := cfg.Rand
	plaza := PlazaRect(cfg.MapWidth, cfg.MapHeight)

	for _, shop := range gamemap.ShopTypes {
		for _n := 0; _n < buildingAttempts; _n++ {
			w := rng.RandInt(r, buildingMinW, buildingMaxW)
			h := rng.RandInt(r, buildingMinH, buildingMaxH)
			x := rng.RandInt(r, buildingMargin, cfg.MapWidth-w-buildingMargin)
			y := rng.RandInt(r, buildingMargin, cfg.MapHeight-h-buildingMargin)
			rect := gamemap.NewRect(x, y, w, h)

			if !buildingFits(rect, gmap.Buildings, plaza) {
				continue
			}
			b := gamemap.Building{Rect: rect, Shop: shop, Name: shop.String()}
			b.Door = carveBuilding(gmap, rect, cfg)
			gmap.Buildings = append(gmap.Buildings, b)
			break
		}
	}

	for y := plaza.Y1; y <= plaza.Y2; y++ {
		for x := plaza.X1; x <= plaza.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}
	cx, cy := plaza.Center()
	gmap.PlaceStairs(gamemap.TileStairsDown, cx, cy)

	logger.For("generate").WithFields(logrus.Fields{
		"level":     cfg.Level,
		"buildings": len(gmap.Buildings),
	}).Debug("town built")
	return gmap
}

func buildingFits(rect gamemap.Rect, placed []gamemap.Building, plaza gamemap.Rect) bool {
	if rect.Intersects(plaza.Expand(plazaBuffer)) {
		return false
	}
	padded := rect.Expand(buildingBuffer)
	for _, b := range placed {
		if padded.Intersects(b.Rect) {
			return false
		}
	}
	return true
}

// carveBuilding walls the perimeter, floors the inside and opens one door on
// a random side away from the corners.
func carveBuilding(gmap *gamemap.GameMap, rect gamemap.Rect, cfg *Config) gamemap.Point {
	for y := rect.Y1; y <= rect.Y2; y++ {
		for x := rect.X1; x <= rect.X2; x++ {
			if x == rect.X1 || x == rect.X2 || y == rect.Y1 || y == rect.Y2 {
				gmap.Set(x, y, gamemap.TileTownWall)
			} else {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}

	r := cfg.Rand
	var door gamemap.Point
	switch r.Intn(4) {
	case 0: // north
		door = gamemap.Point{X: rng.RandInt(r, rect.X1+1, rect.X2-1), Y: rect.Y1}
	case 1: // east
		door = gamemap.Point{X: rect.X2, Y: rng.RandInt(r, rect.Y1+1, rect.Y2-1)}
	case 2: // south
		door = gamemap.Point{X: rng.RandInt(r, rect.X1+1, rect.X2-1), Y: rect.Y2}
	default: // west
		door = gamemap.Point{X: rect.X1, Y: rng.RandInt(r, rect.Y1+1, rect.Y2-1)}
	}
	gmap.Set(door.X, door.Y, gamemap.TileFloor)
	return door
}

// TownResult lists the shopkeepers and stock to spawn in the town.
type TownResult struct {
	Shops []gamemap.Building
	Stock []ItemSpawn
}

// PopulateTown picks 3-6 distinct items from each shop's pool and scatters
// them on the shop floor as unpaid stock. Each building also gets a
// shopkeeper, spawned by the caller at the door.
func PopulateTown(gmap *gamemap.GameMap, cfg *Config) TownResult {
	var result TownResult
	r := cfg.Rand
	for _, b := range gmap.Buildings {
		result.Shops = append(result.Shops, b)

		pool := assets.ShopPools[b.Name]
		n := min(rng.RandInt(r, minStock, maxStock), len(pool))
		order := r.Perm(len(pool))
		bounds := b.Bounds()
		used := make(map[gamemap.Point]bool)
		for _, idx := range order[:n] {
			p, ok := pickFree(bounds, used, cfg)
			if !ok {
				break
			}
			used[p] = true
			result.Stock = append(result.Stock, ItemSpawn{Key: pool[idx], X: p.X, Y: p.Y, Unpaid: true})
		}
	}
	return result
}

// pickFree tries a handful of random spots in bounds, then scans it row by
// row. It fails only when every tile is used.
func pickFree(bounds gamemap.Rect, used map[gamemap.Point]bool, cfg *Config) (gamemap.Point, bool) {
	for _n := 0; _n < 20; _n++ {
		p := gamemap.Point{X: rng.RandInt(cfg.Rand, bounds.X1, bounds.X2), Y: rng.RandInt(cfg.Rand, bounds.Y1, bounds.Y2)}
		if !used[p] {
			return p, true
		}
	}
	for y := bounds.Y1; y <= bounds.Y2; y++ {
		for x := bounds.X1; x <= bounds.X2; x++ {
			if p := (gamemap.Point{X: x, Y: y}); !used[p] {
				return p, true
			}
		}
	}
	return gamemap.Point{}, false
}
