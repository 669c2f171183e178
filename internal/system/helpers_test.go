package system

import (
	"math/rand"

	"crimson-depths/assets"
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/factory"
	"crimson-depths/internal/gamemap"
)

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h int) *gamemap.GameMap {
	return gamemap.NewFilled(w, h, gamemap.TileFloor)
}

// newTestWorld creates a world with a player at (px, py) on a 20×20 open map.
// The player's attributes are all 10 so no modifiers apply.
func newTestWorld(px, py int) (*ecs.World, *gamemap.GameMap, ecs.EntityID) {
	w := ecs.NewWorld()
	gmap := openMap(20, 20)
	player := factory.NewPlayer(w, rand.New(rand.NewSource(1)), px, py, 10, 100)
	f := FighterOf(w, player)
	f.Attr = component.Attributes{Str: 10, Int: 10, Wis: 10, Dex: 10, Con: 10, Cha: 10}
	f.RecomputeDodge()
	gmap.AddEntity(player)
	return w, gmap, player
}

// addMonster places a hostile monster with the named template at (x, y).
func addMonster(w *ecs.World, gmap *gamemap.GameMap, name string, x, y int) ecs.EntityID {
	tmpl, ok := assets.MonsterByName(name)
	if !ok {
		panic("unknown monster " + name)
	}
	id := factory.NewMonster(w, rand.New(rand.NewSource(2)), tmpl, x, y)
	gmap.AddEntity(id)
	return id
}

// addItem drops a catalog item at (x, y).
func addItem(w *ecs.World, gmap *gamemap.GameMap, key string, x, y int) ecs.EntityID {
	id, ok := factory.NewItemByKey(w, key, x, y)
	if !ok {
		panic("unknown item key " + key)
	}
	gmap.AddEntity(id)
	return id
}

// carry puts a fresh catalog item straight into the player's pack.
func carry(w *ecs.World, gmap *gamemap.GameMap, player ecs.EntityID, key string) ecs.EntityID {
	id := addItem(w, gmap, key, 0, 0)
	liftFromGround(w, gmap, id)
	if err := Add(InventoryOf(w, player), id); err != nil {
		panic(err)
	}
	return id
}

// sure makes a fighter always hit and never dodge.
func sure(f *component.Fighter) {
	f.BaseDodge = 0
	f.DodgeBonus = 0
	f.Dodge = 0
}

// shopMap builds a 30×20 grass map with one walled shop and returns it with
// its building. The door is on the west wall.
func shopMap() (*gamemap.GameMap, gamemap.Building) {
	gmap := gamemap.NewFilled(30, 20, gamemap.TileGrass)
	rect := gamemap.NewRect(10, 5, 10, 8)
	for y := rect.Y1; y <= rect.Y2; y++ {
		for x := rect.X1; x <= rect.X2; x++ {
			if x == rect.X1 || x == rect.X2 || y == rect.Y1 || y == rect.Y2 {
				gmap.Set(x, y, gamemap.TileTownWall)
			} else {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}
	b := gamemap.Building{Rect: rect, Shop: gamemap.ShopWeaponsmith, Door: gamemap.Point{X: 10, Y: 9}, Name: "Weaponsmith"}
	gmap.Set(b.Door.X, b.Door.Y, gamemap.TileFloor)
	gmap.Buildings = append(gmap.Buildings, b)
	return gmap, b
}
