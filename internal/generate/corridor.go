package generate

import (
	"math/rand"

	"crimson-depths/internal/gamemap"
	"crimson-depths/internal/rng"
)

// carveCorridor digs an L-shaped tunnel from (x1,y1) to (x2,y2), choosing
// horizontal-first or vertical-first with equal odds.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, r *rand.Rand) {
	if rng.Chance(r, 50) {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		dig(gmap, x, y)
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		dig(gmap, x, y)
	}
}

// dig turns wall into corridor; room floor is left alone.
func dig(gmap *gamemap.GameMap, x, y int) {
	if gmap.InBounds(x, y) && gmap.Kind(x, y) == gamemap.TileWall {
		gmap.Set(x, y, gamemap.TileCorridor)
	}
}
