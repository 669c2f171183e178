package generate

import (
	"crimson-depths/internal/gamemap"
	"crimson-depths/internal/logger"
	"crimson-depths/internal/rng"

	"github.com/sirupsen/logrus"
)

// Dungeon carves rooms joined by L-shaped corridors into an all-wall map.
// Each of the MaxRooms attempts places one random room or is skipped when it
// would overlap an earlier room; there is no retry.
func Dungeon(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	gmap.Level = cfg.Level
	r := cfg.Rand

	for _n := 0; _n < cfg.MaxRooms; _n++ {
		w := rng.RandInt(r, cfg.MinRoomSize, cfg.MaxRoomSize)
		h := rng.RandInt(r, cfg.MinRoomSize, cfg.MaxRoomSize)
		x := rng.RandInt(r, 0, cfg.MapWidth-w-1)
		y := rng.RandInt(r, 0, cfg.MapHeight-h-1)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, gmap.Rooms) {
			continue
		}
		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			px, py := gmap.Rooms[n-1].Center()
			cx, cy := room.Center()
			carveCorridor(gmap, px, py, cx, cy, r)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}

	logger.For("generate").WithFields(logrus.Fields{
		"level": cfg.Level,
		"rooms": len(gmap.Rooms),
	}).Debug("dungeon carved")
	return gmap
}

func overlapsAny(r gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom floors the interior of r, leaving its edge as wall.
func carveRoom(gmap *gamemap.GameMap, r gamemap.Rect) {
	in := r.Interior()
	for y := in.Y1; y <= in.Y2; y++ {
		for x := in.X1; x <= in.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}
}
