package factory

import (
	"crimson-depths/assets"
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

func newItem(w *ecs.World, name string, glyph rune, color tcell.Color, item *component.Item, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: glyph, Color: color, RenderOrder: component.OrderItem})
	w.Add(id, component.Identity{Name: name, Kind: component.KindItem})
	if item.Price == 0 {
		item.Price = assets.Prices[item.Key]
	}
	w.Add(id, item)
	return id
}

// NewWeapon creates a melee or missile weapon on the ground.
func NewWeapon(w *ecs.World, t assets.WeaponTemplate, x, y int) ecs.EntityID {
	kind, glyph := component.ItemWeapon, '/'
	if t.Ranged {
		kind, glyph = component.ItemRangedWeapon, '}'
	}
	return newItem(w, t.Name, glyph, tcell.ColorWhite, &component.Item{
		Kind: kind,
		Key:  t.Key,
		Weapon: &component.WeaponStats{
			Class:      t.Class,
			DamageType: t.DamageType,
			Size:       t.Size,
			Damage:     t.Damage,
			Ranged:     t.Ranged,
			Ammo:       t.Ammo,
			Range:      t.Range,
		},
	}, x, y)
}

// NewArmor creates a piece of worn protection.
func NewArmor(w *ecs.World, t assets.ArmorTemplate, x, y int) ecs.EntityID {
	return newItem(w, t.Name, t.Glyph, tcell.ColorLightBlue, &component.Item{
		Kind:  t.Kind,
		Key:   t.Key,
		Armor: &component.ArmorStats{Armor: t.Armor, Dodge: t.Dodge},
	}, x, y)
}

// NewAmmo creates a full quiver.
func NewAmmo(w *ecs.World, t assets.AmmoTemplate, x, y int) ecs.EntityID {
	return newItem(w, t.Name, '|', tcell.ColorTan, &component.Item{
		Kind: component.ItemAmmo,
		Key:  t.Key,
		Ammo: &component.AmmoStats{Ammo: t.Ammo, Capacity: t.Capacity, Charge: t.Capacity},
	}, x, y)
}

func NewHealingPotion(w *ecs.World, x, y int) ecs.EntityID {
	return newItem(w, "Healing Potion", '!', tcell.ColorYellow, &component.Item{
		Kind: component.ItemConsumable,
		Key:  assets.HealingPotionKey,
		Use:  &component.Consumable{Effect: component.EffectHeal, Amount: assets.HealAmount},
	}, x, y)
}

// NewItemByKey creates any catalog item. ok is false for unknown keys.
func NewItemByKey(w *ecs.World, key string, x, y int) (ecs.EntityID, bool) {
	if key == assets.HealingPotionKey {
		return NewHealingPotion(w, x, y), true
	}
	if t, ok := assets.WeaponByKey(key); ok {
		return NewWeapon(w, t, x, y), true
	}
	if t, ok := assets.ArmorByKey(key); ok {
		return NewArmor(w, t, x, y), true
	}
	if t, ok := assets.AmmoByKey(key); ok {
		return NewAmmo(w, t, x, y), true
	}
	return ecs.NilEntity, false
}
