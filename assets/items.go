package assets

import "crimson-depths/internal/component"

// WeaponTemplate describes a melee or missile weapon.
type WeaponTemplate struct {
	Key        string
	Name       string
	Class      string
	DamageType string
	Size       component.WeaponSize
	Damage     component.Dice
	Ranged     bool
	Ammo       component.AmmoType
	Range      int
}

// AmmoTemplate describes a quiver or pouch of ammunition.
type AmmoTemplate struct {
	Key      string
	Name     string
	Ammo     component.AmmoType
	Capacity int
}

// ArmorTemplate describes worn protection.
type ArmorTemplate struct {
	Key   string
	Name  string
	Kind  component.ItemKind
	Glyph rune
	Armor int
	Dodge int
}

const (
	small  = component.SizeSmall
	medium = component.SizeMedium
	large  = component.SizeLarge
)

var Weapons = []WeaponTemplate{
	{Key: "hand_axe", Name: "Hand Axe", Class: "Axe", DamageType: "Edge", Size: small, Damage: d(1, 6)},
	{Key: "battle_axe", Name: "Battle Axe", Class: "Axe", DamageType: "Edge", Size: medium, Damage: d(1, 8)},
	{Key: "great_axe", Name: "Great Axe", Class: "Axe", DamageType: "Edge", Size: large, Damage: d(1, 10)},
	{Key: "dagger", Name: "Dagger", Class: "Dagger", DamageType: "Edge", Size: small, Damage: d(1, 4)},
	{Key: "short_sword", Name: "Short Sword", Class: "Sword", DamageType: "Edge", Size: small, Damage: d(1, 6)},
	{Key: "long_sword", Name: "Long Sword", Class: "Sword", DamageType: "Edge", Size: medium, Damage: d(1, 8)},
	{Key: "great_sword", Name: "Great Sword", Class: "Sword", DamageType: "Edge", Size: large, Damage: d(1, 10)},
	{Key: "warhammer", Name: "Warhammer", Class: "Mace", DamageType: "Blunt", Size: small, Damage: d(1, 6)},
	{Key: "mace", Name: "Mace", Class: "Mace", DamageType: "Blunt", Size: medium, Damage: d(1, 8)},
	{Key: "maul", Name: "Maul", Class: "Mace", DamageType: "Blunt", Size: large, Damage: d(1, 10)},
	{Key: "club", Name: "Club", Class: "Staff", DamageType: "Blunt", Size: small, Damage: d(1, 4)},
	{Key: "walking_staff", Name: "Walking Staff", Class: "Staff", DamageType: "Blunt", Size: medium, Damage: d(1, 4)},
	{Key: "quarter_staff", Name: "Quarter Staff", Class: "Staff", DamageType: "Blunt", Size: large, Damage: d(1, 6)},
	{Key: "spear", Name: "Spear", Class: "Spear", DamageType: "Piercing", Size: medium, Damage: d(1, 6)},
}

var RangedWeapons = []WeaponTemplate{
	{Key: "sling", Name: "Sling", Class: "Sling", DamageType: "Blunt", Size: small, Damage: d(1, 4), Ranged: true, Ammo: component.AmmoStones, Range: 6},
	{Key: "shortbow", Name: "Shortbow", Class: "Bow", DamageType: "Piercing", Size: medium, Damage: d(1, 6), Ranged: true, Ammo: component.AmmoArrows, Range: 8},
	{Key: "light_crossbow", Name: "Light Crossbow", Class: "Crossbow", DamageType: "Piercing", Size: medium, Damage: d(1, 8), Ranged: true, Ammo: component.AmmoBolts, Range: 10},
	{Key: "longbow", Name: "Longbow", Class: "Bow", DamageType: "Piercing", Size: large, Damage: d(1, 8), Ranged: true, Ammo: component.AmmoArrows, Range: 12},
}

var Ammo = []AmmoTemplate{
	{Key: "arrows", Name: "Quiver of Arrows", Ammo: component.AmmoArrows, Capacity: 20},
	{Key: "bolts", Name: "Case of Bolts", Ammo: component.AmmoBolts, Capacity: 15},
	{Key: "stones", Name: "Pouch of Stones", Ammo: component.AmmoStones, Capacity: 25},
}

var Armor = []ArmorTemplate{
	{Key: "leather_armor", Name: "Leather Armor", Kind: component.ItemArmor, Glyph: '#', Armor: 1},
	{Key: "chainmail", Name: "Chainmail", Kind: component.ItemArmor, Glyph: '#', Armor: 3, Dodge: -5},
	{Key: "plate_armor", Name: "Plate Armor", Kind: component.ItemArmor, Glyph: '#', Armor: 5, Dodge: -10},
	{Key: "helmet", Name: "Helmet", Kind: component.ItemHelmet, Glyph: '^', Armor: 1},
	{Key: "boots", Name: "Boots", Kind: component.ItemBoots, Glyph: ']', Dodge: 2},
	{Key: "gloves", Name: "Gloves", Kind: component.ItemGloves, Glyph: '"', Dodge: 1},
	{Key: "greaves", Name: "Greaves", Kind: component.ItemLegArmor, Glyph: '=', Armor: 1},
	{Key: "shield", Name: "Shield", Kind: component.ItemShield, Glyph: '[', Armor: 1, Dodge: 5},
}

// HealingPotionKey is the catalog key of the only consumable.
const HealingPotionKey = "healing_potion"

// HealAmount is how much a healing potion restores.
const HealAmount = 10

// Prices is the shop catalog in silver.
var Prices = map[string]int{
	"dagger": 10, "club": 5, "hand_axe": 15, "short_sword": 20, "warhammer": 20,
	"battle_axe": 35, "long_sword": 40, "mace": 35, "walking_staff": 10, "spear": 25,
	"great_axe": 60, "great_sword": 70, "maul": 60, "quarter_staff": 15,
	"sling": 10, "shortbow": 35, "light_crossbow": 50, "longbow": 60,
	"arrows": 8, "bolts": 10, "stones": 3,
	"leather_armor": 20, "chainmail": 60, "plate_armor": 120,
	"helmet": 15, "boots": 12, "gloves": 8, "greaves": 18, "shield": 15,
	HealingPotionKey: 25,
}

// CategoryPrices is the fallback price for items missing from the catalog.
var CategoryPrices = map[component.ItemKind]int{
	component.ItemWeapon:       20,
	component.ItemRangedWeapon: 35,
	component.ItemShield:       15,
	component.ItemHelmet:       15,
	component.ItemArmor:        40,
	component.ItemLegArmor:     18,
	component.ItemGloves:       8,
	component.ItemBoots:        12,
	component.ItemConsumable:   25,
	component.ItemAmmo:         8,
	component.ItemKey:          5,
	component.ItemMisc:         1,
}

// ShopPools lists the catalog keys each shop draws its stock from.
var ShopPools = map[string][]string{
	"Weaponsmith": {"dagger", "short_sword", "long_sword", "mace", "battle_axe", "warhammer", "shortbow", "longbow", "arrows"},
	"Armorsmith":  {"leather_armor", "chainmail", "plate_armor", "helmet", "boots", "gloves", "shield", "greaves"},
	"Apothecary":  {HealingPotionKey, HealingPotionKey, HealingPotionKey, HealingPotionKey, HealingPotionKey, HealingPotionKey},
}

func WeaponByKey(key string) (WeaponTemplate, bool) {
	for _, w := range Weapons {
		if w.Key == key {
			return w, true
		}
	}
	for _, w := range RangedWeapons {
		if w.Key == key {
			return w, true
		}
	}
	return WeaponTemplate{}, false
}

func AmmoByKey(key string) (AmmoTemplate, bool) {
	for _, a := range Ammo {
		if a.Key == key {
			return a, true
		}
	}
	return AmmoTemplate{}, false
}

func ArmorByKey(key string) (ArmorTemplate, bool) {
	for _, a := range Armor {
		if a.Key == key {
			return a, true
		}
	}
	return ArmorTemplate{}, false
}
