package world

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"crimson-depths/internal/component"
	"crimson-depths/internal/config"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/factory"
	"crimson-depths/internal/gamemap"
)

func newTestWorld(t *testing.T, seed int64, mutate func(*config.Config)) (*GameWorld, ecs.EntityID) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	w := ecs.NewWorld()
	player := factory.NewPlayer(w, rand.New(rand.NewSource(seed)), 0, 0, cfg.InventoryCapacity, cfg.StartingSilver)
	return New(cfg, seed, w), player
}

// snapshot renders a level's tiles and spawned entities as text for comparison.
func snapshot(gw *GameWorld, gmap *gamemap.GameMap) string {
	s := ""
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			s += gmap.Kind(x, y).String()[:1]
		}
	}
	for _, id := range gmap.Entities {
		pos := gw.ecs.Get(id, component.CPosition).(component.Position)
		name := gw.ecs.Get(id, component.CIdentity).(component.Identity).Name
		s += fmt.Sprintf("|%s@%d,%d", name, pos.X, pos.Y)
	}
	return s
}

func TestGetOrCreateLevelCaches(t *testing.T) {
	gw, _ := newTestWorld(t, 7, nil)
	a := gw.GetOrCreateLevel(2)
	if b := gw.GetOrCreateLevel(2); a != b {
		t.Error("second call should return the cached level")
	}
	if !gw.Cached(2) || gw.Cached(3) {
		t.Error("only visited levels are cached")
	}
}

func TestLevelsAreDeterministic(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		gw1, _ := newTestWorld(t, seed, nil)
		gw2, _ := newTestWorld(t, seed, nil)
		// Visiting other levels first must not disturb level 3.
		gw2.GetOrCreateLevel(1)
		gw2.GetOrCreateLevel(0)

		s1 := snapshot(gw1, gw1.GetOrCreateLevel(3))
		if s2 := snapshot(gw2, gw2.GetOrCreateLevel(3)); s1 != s2 {
			t.Errorf("seed=%d: level 3 differs between worlds", seed)
		}

		gw1.Evict(3)
		if s3 := snapshot(gw1, gw1.GetOrCreateLevel(3)); s1 != s3 {
			t.Errorf("seed=%d: level 3 differs after eviction", seed)
		}
	}
}

func TestTownIsDeterministic(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		gw1, _ := newTestWorld(t, seed, nil)
		gw2, _ := newTestWorld(t, seed, nil)
		gw2.GetOrCreateLevel(2)

		town := gw1.GetOrCreateLevel(0)
		s1 := snapshot(gw1, town) + fmt.Sprint(town.Buildings)
		other := gw2.GetOrCreateLevel(0)
		if s2 := snapshot(gw2, other) + fmt.Sprint(other.Buildings); s1 != s2 {
			t.Errorf("seed=%d: town differs between worlds", seed)
		}

		gw1.Evict(0)
		again := gw1.GetOrCreateLevel(0)
		if s3 := snapshot(gw1, again) + fmt.Sprint(again.Buildings); s1 != s3 {
			t.Errorf("seed=%d: town differs after eviction", seed)
		}
	}
}

func TestEvictDestroysLevelEntities(t *testing.T) {
	gw, player := newTestWorld(t, 3, nil)
	gmap := gw.GetOrCreateLevel(1)
	if len(gmap.Entities) == 0 {
		t.Fatal("level 1 should have spawned something")
	}
	ids := append([]ecs.EntityID(nil), gmap.Entities...)
	gmap.AddEntity(player)

	gw.Evict(1)
	for _, id := range ids {
		if gw.ecs.Alive(id) {
			t.Errorf("entity %d survived eviction", id)
		}
	}
	if !gw.ecs.Alive(player) {
		t.Error("eviction must not destroy the player")
	}
	if gw.Cached(1) {
		t.Error("evicted level is still cached")
	}
	gw.Evict(42)
}

func TestTownLevel(t *testing.T) {
	gw, _ := newTestWorld(t, 11, nil)
	town := gw.GetOrCreateLevel(0)
	if len(town.Buildings) == 0 {
		t.Fatal("town has no buildings")
	}
	if town.UpStairs != nil || town.DownStairs == nil {
		t.Error("town has exactly one staircase, leading down")
	}

	keepers, stock := 0, 0
	for _, id := range town.Entities {
		if c := gw.ecs.Get(id, component.CAI); c != nil && c.(*component.AI).Kind == component.AIShopkeeper {
			keepers++
		}
		if c := gw.ecs.Get(id, component.CItem); c != nil {
			stock++
			if !c.(*component.Item).Unpaid {
				t.Error("shop stock must start unpaid")
			}
		}
	}
	if keepers != len(town.Buildings) {
		t.Errorf("%d shopkeepers for %d buildings", keepers, len(town.Buildings))
	}
	if stock < 3*len(town.Buildings) {
		t.Errorf("only %d items of stock", stock)
	}
}

func TestMinLevelWithoutTown(t *testing.T) {
	gw, player := newTestWorld(t, 5, func(c *config.Config) { c.Town = false })
	if gw.MinLevel() != 1 {
		t.Fatalf("MinLevel = %d, want 1", gw.MinLevel())
	}
	gmap := gw.PlaceAtStart(player)
	if gw.CurrentLevel() != 1 || gmap.UpStairs != nil {
		t.Error("without a town the player starts on level 1, which has no way up")
	}
	want := Arrival(gmap)
	if pos := gw.ecs.Get(player, component.CPosition).(component.Position); pos.X != want.X || pos.Y != want.Y {
		t.Errorf("start at %v, want first room center %v", pos, want)
	}
}

func TestDescendAndAscend(t *testing.T) {
	gw, player := newTestWorld(t, 9, nil)
	town := gw.PlaceAtStart(player)
	pos := gw.ecs.Get(player, component.CPosition).(component.Position)
	if pos.X != town.DownStairs.X || pos.Y != town.DownStairs.Y {
		t.Fatalf("player starts at %v, want the plaza stairs %v", pos, *town.DownStairs)
	}

	if _, err := gw.Ascend(player); !errors.Is(err, ErrNotOnStairs) {
		t.Errorf("ascend on down stairs: err = %v", err)
	}

	level1, err := gw.Descend(player)
	if err != nil {
		t.Fatal(err)
	}
	if gw.CurrentLevel() != 1 || town.HasEntity(player) || !level1.HasEntity(player) {
		t.Fatal("player should have moved to level 1's entity list")
	}
	pos = gw.ecs.Get(player, component.CPosition).(component.Position)
	if level1.UpStairs == nil || pos.X != level1.UpStairs.X || pos.Y != level1.UpStairs.Y {
		t.Fatalf("player at %v, want level 1 up stairs", pos)
	}

	back, err := gw.Ascend(player)
	if err != nil {
		t.Fatal(err)
	}
	if back != town || gw.CurrentLevel() != 0 {
		t.Error("ascending from level 1 should return to the cached town")
	}
	pos = gw.ecs.Get(player, component.CPosition).(component.Position)
	if pos.X != town.DownStairs.X || pos.Y != town.DownStairs.Y {
		t.Errorf("player at %v, want the town stairs", pos)
	}
}

func TestLevelBounds(t *testing.T) {
	gw, player := newTestWorld(t, 2, func(c *config.Config) { c.MaxLevels = 1 })
	town := gw.PlaceAtStart(player)
	p := town.DownStairs
	if _, err := gw.Descend(player); err != nil {
		t.Fatal(err)
	}
	bottom := gw.Current()
	if bottom.DownStairs != nil {
		t.Error("the deepest level has no down stairs")
	}
	pos := gw.ecs.Get(player, component.CPosition).(component.Position)
	bottom.Set(pos.X, pos.Y, gamemap.TileStairsDown)
	if _, err := gw.Descend(player); !errors.Is(err, ErrNoDeeperLevel) {
		t.Errorf("err = %v, want ErrNoDeeperLevel", err)
	}

	gw.Place(player, 0, p.X, p.Y)
	town.Set(p.X, p.Y, gamemap.TileStairsUp)
	if _, err := gw.Ascend(player); !errors.Is(err, ErrNoHigherLevel) {
		t.Errorf("err = %v, want ErrNoHigherLevel", err)
	}
}
