package generate

import (
	"crimson-depths/assets"
	"crimson-depths/internal/gamemap"
	"crimson-depths/internal/rng"
)

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Template assets.MonsterTemplate
	X, Y     int
}

// ItemSpawn describes one catalog item to create. Unpaid items are shop stock.
type ItemSpawn struct {
	Key    string
	X, Y   int
	Unpaid bool
}

// PopulateResult lists everything to spawn on a dungeon level.
type PopulateResult struct {
	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

// Populate rolls monsters and items for every room. The first room is the
// arrival room and gets no monsters. A roll landing on an occupied or
// non-floor tile is dropped rather than retried.
func Populate(gmap *gamemap.GameMap, cfg *Config) PopulateResult {
	var result PopulateResult
	r := cfg.Rand
	eligible := assets.MonstersForLevel(cfg.Level)

	occupied := make(map[gamemap.Point]bool)
	free := func(x, y int) bool {
		return gmap.Kind(x, y) == gamemap.TileFloor && !occupied[gamemap.Point{X: x, Y: y}]
	}

	for i, room := range gmap.Rooms {
		in := room.Interior()
		nMonsters := rng.RandInt(r, 0, cfg.MaxMonstersPerRoom)
		nItems := rng.RandInt(r, 0, cfg.MaxItemsPerRoom)

		for _n := 0; _n < nMonsters; _n++ {
			x, y := rng.RandInt(r, in.X1, in.X2), rng.RandInt(r, in.Y1, in.Y2)
			if i == 0 || len(eligible) == 0 || !free(x, y) {
				continue
			}
			occupied[gamemap.Point{X: x, Y: y}] = true
			result.Monsters = append(result.Monsters, MonsterSpawn{
				Template: eligible[r.Intn(len(eligible))],
				X:        x, Y: y,
			})
		}

		for _n := 0; _n < nItems; _n++ {
			x, y := rng.RandInt(r, in.X1, in.X2), rng.RandInt(r, in.Y1, in.Y2)
			if !free(x, y) {
				continue
			}
			occupied[gamemap.Point{X: x, Y: y}] = true
			result.Items = append(result.Items, ItemSpawn{Key: rollItemKey(cfg), X: x, Y: y})
		}
	}
	return result
}

// rollItemKey picks a floor item: mostly potions and melee weapons, with
// missile gear and armor less common.
func rollItemKey(cfg *Config) string {
	r := cfg.Rand
	roll := r.Float64()
	switch {
	case roll < 0.35:
		return assets.HealingPotionKey
	case roll < 0.60:
		return assets.Weapons[r.Intn(len(assets.Weapons))].Key
	case roll < 0.65:
		return assets.RangedWeapons[r.Intn(len(assets.RangedWeapons))].Key
	case roll < 0.75:
		return assets.Ammo[r.Intn(len(assets.Ammo))].Key
	default:
		return assets.Armor[r.Intn(len(assets.Armor))].Key
	}
}
