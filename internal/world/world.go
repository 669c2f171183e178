// Package world owns the stack of levels and moves the player between them.
package world

import (
	"errors"
	"math/rand"

	"crimson-depths/internal/component"
	"crimson-depths/internal/config"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/factory"
	"crimson-depths/internal/gamemap"
	"crimson-depths/internal/generate"
	"crimson-depths/internal/logger"
	"crimson-depths/internal/rng"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotOnStairs   = errors.New("not standing on the stairs")
	ErrNoDeeperLevel = errors.New("no deeper level")
	ErrNoHigherLevel = errors.New("no higher level")
)

// GameWorld caches generated levels. All levels share one entity arena;
// each level's entity list says which entities live there.
type GameWorld struct {
	cfg     config.Config
	seed    int64
	ecs     *ecs.World
	levels  map[int]*gamemap.GameMap
	current int
}

// New returns an empty world. Levels are generated on first visit.
func New(cfg config.Config, seed int64, w *ecs.World) *GameWorld {
	return &GameWorld{
		cfg:     cfg,
		seed:    seed,
		ecs:     w,
		levels:  make(map[int]*gamemap.GameMap),
		current: cfg.MinLevel(),
	}
}

func (gw *GameWorld) Seed() int64       { return gw.seed }
func (gw *GameWorld) CurrentLevel() int { return gw.current }
func (gw *GameWorld) MinLevel() int     { return gw.cfg.MinLevel() }
func (gw *GameWorld) MaxLevels() int    { return gw.cfg.MaxLevels }
func (gw *GameWorld) ECS() *ecs.World   { return gw.ecs }

// Cached reports whether level n has been generated and not evicted.
func (gw *GameWorld) Cached(n int) bool {
	_, ok := gw.levels[n]
	return ok
}

// Current returns the level the player is on, generating it if needed.
func (gw *GameWorld) Current() *gamemap.GameMap {
	return gw.GetOrCreateLevel(gw.current)
}

func (gw *GameWorld) genConfig(n int, r *rand.Rand) *generate.Config {
	return &generate.Config{
		MapWidth:           gw.cfg.MapWidth,
		MapHeight:          gw.cfg.MapHeight,
		MaxRooms:           gw.cfg.MaxRooms,
		MinRoomSize:        gw.cfg.RoomMinSize,
		MaxRoomSize:        gw.cfg.RoomMaxSize,
		Level:              n,
		MinLevel:           gw.cfg.MinLevel(),
		MaxLevels:          gw.cfg.MaxLevels,
		MaxMonstersPerRoom: gw.cfg.MaxMonstersPerRoom,
		MaxItemsPerRoom:    gw.cfg.MaxItemsPerRoom,
		Rand:               r,
	}
}

// GetOrCreateLevel returns level n, building and populating it from the
// level's own seed on first use.
func (gw *GameWorld) GetOrCreateLevel(n int) *gamemap.GameMap {
	if gmap, ok := gw.levels[n]; ok {
		return gmap
	}
	r := rng.ForLevel(gw.seed, n)
	cfg := gw.genConfig(n, r)

	var gmap *gamemap.GameMap
	if n == 0 && gw.cfg.Town {
		gmap = generate.Town(cfg)
		res := generate.PopulateTown(gmap, cfg)
		for _, b := range res.Shops {
			gmap.AddEntity(factory.NewShopkeeper(gw.ecs, r, b))
		}
		gw.spawnItems(gmap, res.Stock)
	} else {
		gmap = generate.Dungeon(cfg)
		generate.PlaceStairs(gmap, cfg)
		res := generate.Populate(gmap, cfg)
		for _, m := range res.Monsters {
			gmap.AddEntity(factory.NewMonster(gw.ecs, r, m.Template, m.X, m.Y))
		}
		gw.spawnItems(gmap, res.Items)
	}
	gw.levels[n] = gmap

	logger.For("world").WithFields(logrus.Fields{
		"level":    n,
		"entities": len(gmap.Entities),
	}).Debug("level created")
	return gmap
}

func (gw *GameWorld) spawnItems(gmap *gamemap.GameMap, spawns []generate.ItemSpawn) {
	for _, s := range spawns {
		id, ok := factory.NewItemByKey(gw.ecs, s.Key, s.X, s.Y)
		if !ok {
			logger.For("world").WithField("key", s.Key).Warn("unknown item key")
			continue
		}
		if s.Unpaid {
			gw.ecs.Get(id, component.CItem).(*component.Item).Unpaid = true
		}
		gmap.AddEntity(id)
	}
}

// Evict destroys every non-player entity on level n and forgets the level.
// The next visit regenerates it from the seed.
func (gw *GameWorld) Evict(n int) {
	gmap, ok := gw.levels[n]
	if !ok {
		return
	}
	for _, id := range gmap.Entities {
		if !gw.ecs.Has(id, component.CTagPlayer) {
			gw.ecs.DestroyEntity(id)
		}
	}
	delete(gw.levels, n)
}

// Arrival returns where a player entering gmap without a matching staircase
// lands: the first room's center, else the map center (the town plaza).
func Arrival(gmap *gamemap.GameMap) gamemap.Point {
	if len(gmap.Rooms) > 0 {
		x, y := gmap.Rooms[0].Center()
		return gamemap.Point{X: x, Y: y}
	}
	return gamemap.Point{X: gmap.Width / 2, Y: gmap.Height / 2}
}

// Place puts the player on level n at (x, y) and makes n current.
func (gw *GameWorld) Place(player ecs.EntityID, n, x, y int) *gamemap.GameMap {
	if old, ok := gw.levels[gw.current]; ok {
		old.RemoveEntity(player)
	}
	gmap := gw.GetOrCreateLevel(n)
	gw.ecs.Add(player, component.Position{X: x, Y: y})
	gmap.AddEntity(player)
	gw.current = n
	return gmap
}

// PlaceAtStart puts the player on the shallowest level: the town plaza or
// the first room of level 1.
func (gw *GameWorld) PlaceAtStart(player ecs.EntityID) *gamemap.GameMap {
	n := gw.MinLevel()
	p := Arrival(gw.GetOrCreateLevel(n))
	return gw.Place(player, n, p.X, p.Y)
}

func (gw *GameWorld) standsOn(player ecs.EntityID, kind gamemap.TileKind) bool {
	c := gw.ecs.Get(player, component.CPosition)
	if c == nil {
		return false
	}
	pos := c.(component.Position)
	return gw.Current().Kind(pos.X, pos.Y) == kind
}

// Descend takes the player down the staircase they stand on and places them
// on the up staircase of the next level.
func (gw *GameWorld) Descend(player ecs.EntityID) (*gamemap.GameMap, error) {
	if !gw.standsOn(player, gamemap.TileStairsDown) {
		return nil, ErrNotOnStairs
	}
	if gw.current >= gw.cfg.MaxLevels {
		return nil, ErrNoDeeperLevel
	}
	return gw.transfer(player, gw.current+1, func(m *gamemap.GameMap) *gamemap.Point { return m.UpStairs }), nil
}

// Ascend is the reverse of Descend.
func (gw *GameWorld) Ascend(player ecs.EntityID) (*gamemap.GameMap, error) {
	if !gw.standsOn(player, gamemap.TileStairsUp) {
		return nil, ErrNotOnStairs
	}
	if gw.current <= gw.MinLevel() {
		return nil, ErrNoHigherLevel
	}
	return gw.transfer(player, gw.current-1, func(m *gamemap.GameMap) *gamemap.Point { return m.DownStairs }), nil
}

func (gw *GameWorld) transfer(player ecs.EntityID, n int, stairs func(*gamemap.GameMap) *gamemap.Point) *gamemap.GameMap {
	from := gw.current
	gmap := gw.GetOrCreateLevel(n)
	p := Arrival(gmap)
	if s := stairs(gmap); s != nil {
		p = *s
	}
	gw.Place(player, n, p.X, p.Y)

	logger.For("world").WithFields(logrus.Fields{
		"from": from,
		"to":   n,
		"x":    p.X,
		"y":    p.Y,
	}).Debug("level transition")
	return gmap
}
