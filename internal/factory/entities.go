package factory

import (
	"math/rand"

	"crimson-depths/assets"
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Player starting profile.
const (
	PlayerHP        = 12
	PlayerBaseDodge = 5
)

// Shopkeeper combat profile.
const (
	ShopkeeperHP    = 20
	ShopkeeperArmor = 2
	ShopkeeperDodge = 15
)

func rollAttributes(r *rand.Rand) component.Attributes {
	d := component.Dice{Count: 3, Sides: 6}
	return component.Attributes{
		Str: d.Roll(r), Int: d.Roll(r), Wis: d.Roll(r),
		Dex: d.Roll(r), Con: d.Roll(r), Cha: d.Roll(r),
	}
}

// NewPlayer creates the player entity at (x, y). It is not yet on any level.
func NewPlayer(w *ecs.World, r *rand.Rand, x, y, capacity, silver int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: '@', Color: tcell.ColorYellow, RenderOrder: component.OrderActor})
	w.Add(id, component.Identity{Name: "Player", Kind: component.KindPlayer})
	f := &component.Fighter{
		HP: PlayerHP, MaxHP: PlayerHP,
		BaseDodge:  PlayerBaseDodge,
		BaseDamage: component.Unarmed, Damage: component.Unarmed,
		Attr:   rollAttributes(r),
		Level:  1,
		Levels: assets.PlayerLevels(),
	}
	f.AttackBonus = f.Levels[0].AttackBonus
	f.RecomputeDodge()
	w.Add(id, f)
	w.Add(id, component.NewInventory(capacity))
	w.Add(id, component.Wallet{Silver: silver})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

var monsterColors = []tcell.Color{
	tcell.ColorRed, tcell.ColorGreen, tcell.ColorOlive, tcell.ColorFuchsia,
	tcell.ColorTeal, tcell.ColorSilver, tcell.ColorOrange, tcell.ColorPurple,
}

// NewMonster rolls a hostile creature from its template.
func NewMonster(w *ecs.World, r *rand.Rand, t assets.MonsterTemplate, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	hp := max(1, t.HitDice.Roll(r))
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       t.Glyph,
		Color:       monsterColors[int(t.Glyph)%len(monsterColors)],
		RenderOrder: component.OrderActor,
	})
	w.Add(id, component.Identity{Name: t.Name, Kind: component.KindEnemy})
	f := &component.Fighter{
		HP: hp, MaxHP: hp,
		Armor:      t.Armor,
		BaseDodge:  t.Dodge,
		BaseDamage: t.Damage, Damage: t.Damage,
		Attr:  rollAttributes(r),
		Level: 1,
	}
	f.RecomputeDodge()
	w.Add(id, f)
	w.Add(id, component.NewHostileAI())
	w.Add(id, component.TagBlocking{})
	return id
}

var shopGlyphs = map[gamemap.ShopType]rune{
	gamemap.ShopWeaponsmith: '1',
	gamemap.ShopArmorsmith:  '2',
	gamemap.ShopApothecary:  '3',
}

// NewShopkeeper places a shopkeeper in the building's doorway.
func NewShopkeeper(w *ecs.World, r *rand.Rand, b gamemap.Building) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: b.Door.X, Y: b.Door.Y})
	w.Add(id, component.Renderable{Glyph: shopGlyphs[b.Shop], Color: tcell.ColorAqua, RenderOrder: component.OrderActor})
	w.Add(id, component.Identity{Name: b.Name, Kind: component.KindEnemy})
	dmg := component.Dice{Count: 1, Sides: 6}
	f := &component.Fighter{
		HP: ShopkeeperHP, MaxHP: ShopkeeperHP,
		Armor:      ShopkeeperArmor,
		BaseDodge:  ShopkeeperDodge,
		BaseDamage: dmg, Damage: dmg,
		Attr:  rollAttributes(r),
		Level: 1,
	}
	f.RecomputeDodge()
	w.Add(id, f)
	w.Add(id, component.NewShopkeeperAI(b))
	w.Add(id, component.Wallet{Silver: 500})
	w.Add(id, component.TagBlocking{})
	return id
}
