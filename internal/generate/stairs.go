package generate

import "crimson-depths/internal/gamemap"

// PlaceStairs puts the down staircase in a random room other than the first
// (unless this is the deepest level) and the up staircase in a random room
// whose center differs from the down staircase (unless this is the top level).
func PlaceStairs(gmap *gamemap.GameMap, cfg *Config) {
	if len(gmap.Rooms) == 0 {
		return
	}
	r := cfg.Rand

	var down *gamemap.Point
	if cfg.Level < cfg.MaxLevels {
		cands := gmap.Rooms[1:]
		if len(cands) == 0 {
			cands = gmap.Rooms
		}
		x, y := cands[r.Intn(len(cands))].Center()
		gmap.PlaceStairs(gamemap.TileStairsDown, x, y)
		down = gmap.DownStairs
	}

	if cfg.Level > cfg.MinLevel {
		var cands []gamemap.Rect
		for _, room := range gmap.Rooms {
			x, y := room.Center()
			if down != nil && down.X == x && down.Y == y {
				continue
			}
			cands = append(cands, room)
		}
		if len(cands) == 0 {
			return
		}
		x, y := cands[r.Intn(len(cands))].Center()
		gmap.PlaceStairs(gamemap.TileStairsUp, x, y)
	}
}
