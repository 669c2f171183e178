package component

import "crimson-depths/internal/ecs"

// ItemKind is the category an item belongs to; it fixes the equipment slot.
type ItemKind uint8

const (
	ItemWeapon ItemKind = iota
	ItemRangedWeapon
	ItemShield
	ItemHelmet
	ItemArmor
	ItemLegArmor
	ItemGloves
	ItemBoots
	ItemConsumable
	ItemAmmo
	ItemKey
	ItemMisc
)

var itemKindNames = [...]string{
	"weapon", "ranged weapon", "shield", "helmet", "armor", "leg armor",
	"gloves", "boots", "consumable", "ammo", "key", "misc",
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "item"
}

// Slot is an equipment position on an inventory.
type Slot uint8

const (
	SlotRightHand Slot = iota
	SlotLeftHand
	SlotHead
	SlotTorso
	SlotLegs
	SlotHands
	SlotFeet
	SlotQuiver
	NumSlots
)

var slotNames = [...]string{"right hand", "left hand", "head", "torso", "legs", "hands", "feet", "quiver"}

func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "none"
}

// IsHand reports whether s is one of the two hand slots.
func (s Slot) IsHand() bool { return s == SlotRightHand || s == SlotLeftHand }

var kindSlots = map[ItemKind]Slot{
	ItemWeapon:       SlotRightHand,
	ItemRangedWeapon: SlotRightHand,
	ItemShield:       SlotLeftHand,
	ItemHelmet:       SlotHead,
	ItemArmor:        SlotTorso,
	ItemLegArmor:     SlotLegs,
	ItemGloves:       SlotHands,
	ItemBoots:        SlotFeet,
	ItemAmmo:         SlotQuiver,
}

// SlotFor maps an item kind to its slot; ok is false for unequippable kinds.
func SlotFor(k ItemKind) (Slot, bool) {
	s, ok := kindSlots[k]
	return s, ok
}

// WeaponSize is S, M or L; large weapons need both hands.
type WeaponSize uint8

const (
	SizeSmall WeaponSize = iota
	SizeMedium
	SizeLarge
)

func (s WeaponSize) String() string {
	return [...]string{"S", "M", "L"}[s]
}

// AmmoType pairs ranged weapons with the ammunition they shoot.
type AmmoType uint8

const (
	AmmoNone AmmoType = iota
	AmmoArrows
	AmmoBolts
	AmmoStones
)

func (a AmmoType) String() string {
	return [...]string{"none", "arrows", "bolts", "stones"}[a]
}

type WeaponStats struct {
	Class      string // Axe, Sword, Mace, Staff, Spear, Bow...
	DamageType string // Edge, Blunt, Piercing
	Size       WeaponSize
	Damage     Dice
	Ranged     bool
	Ammo       AmmoType
	Range      int
}

type ArmorStats struct {
	Armor int
	Dodge int
}

type AmmoStats struct {
	Ammo     AmmoType
	Capacity int
	Charge   int
}

// Effect is what a consumable does when used.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectHeal
)

type Consumable struct {
	Effect Effect
	Amount int
}

// Item is a tagged union on Kind. Weapon is set for weapons, Armor for worn
// gear, Ammo for quivers and Use for consumables.
type Item struct {
	Owner
	Kind ItemKind
	Key  string // catalog key, e.g. "long_sword"

	Price  int
	Unpaid bool

	Weapon *WeaponStats
	Armor  *ArmorStats
	Ammo   *AmmoStats
	Use    *Consumable
}

func (*Item) Type() ecs.ComponentType { return CItem }

// Slot returns where the item is worn; ok is false if it cannot be equipped.
func (i *Item) Slot() (Slot, bool) { return SlotFor(i.Kind) }

func (i *Item) Equippable() bool {
	_, ok := i.Slot()
	return ok
}

// TwoHanded is true for large weapons.
func (i *Item) TwoHanded() bool {
	return i.Weapon != nil && i.Weapon.Size == SizeLarge
}

func (i *Item) ArmorBonus() int {
	if i.Armor == nil {
		return 0
	}
	return i.Armor.Armor
}

func (i *Item) DodgeBonus() int {
	if i.Armor == nil {
		return 0
	}
	return i.Armor.Dodge
}

// IsRanged reports whether the item is a missile weapon.
func (i *Item) IsRanged() bool {
	return i.Weapon != nil && i.Weapon.Ranged
}
