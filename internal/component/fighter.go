package component

import (
	"fmt"
	"math/rand"

	"crimson-depths/internal/ecs"
	"crimson-depths/internal/rng"
)

// Dice is a count-d-sides damage or hit die expression.
type Dice struct {
	Count, Sides int
}

// Unarmed is the damage of a fighter with nothing in the right hand.
var Unarmed = Dice{Count: 1, Sides: 3}

func (d Dice) Roll(r *rand.Rand) int { return rng.Roll(r, d.Count, d.Sides) }

func (d Dice) String() string { return fmt.Sprintf("%dd%d", d.Count, d.Sides) }

// Max is the highest possible roll.
func (d Dice) Max() int { return d.Count * d.Sides }

// Attributes are the six ability scores.
type Attributes struct {
	Str, Int, Wis, Dex, Con, Cha int
}

// AttributeNames lists the accepted short names in display order.
var AttributeNames = []string{"str", "int", "wis", "dex", "con", "cha"}

// Ref returns a pointer to the named score, or nil for an unknown name.
func (a *Attributes) Ref(name string) *int {
	switch name {
	case "str":
		return &a.Str
	case "int":
		return &a.Int
	case "wis":
		return &a.Wis
	case "dex":
		return &a.Dex
	case "con":
		return &a.Con
	case "cha":
		return &a.Cha
	}
	return nil
}

// Modifier is floor((score-10)/div).
func Modifier(score, div int) int {
	n := score - 10
	q := n / div
	if n%div != 0 && (n < 0) != (div < 0) {
		q--
	}
	return q
}

// LevelEntry is one row of a level table. A zero HitDie means FlatHP is used.
type LevelEntry struct {
	Level           int
	XP              int
	HitDie          Dice
	FlatHP          int
	AttackBonus     int
	AttributePoints int
}

// Fighter is the combat state of a creature.
type Fighter struct {
	Owner
	HP, MaxHP int
	// Armor is natural damage reduction; ArmorBonus comes from equipment.
	Armor, ArmorBonus int
	// Dodge is the derived percent chance to avoid a hit.
	BaseDodge, DodgeBonus, Dodge int
	// BaseDamage is used when no weapon is wielded.
	BaseDamage, Damage Dice
	Attr               Attributes

	XP, Level       int
	AttackBonus     int
	AttributePoints int
	Levels          []LevelEntry
}

func (*Fighter) Type() ecs.ComponentType { return CFighter }

// TotalArmor is natural plus equipment armor.
func (f *Fighter) TotalArmor() int { return f.Armor + f.ArmorBonus }

// RecomputeDodge derives Dodge from base, equipment and dexterity.
func (f *Fighter) RecomputeDodge() {
	f.Dodge = max(0, f.BaseDodge+f.DodgeBonus+Modifier(f.Attr.Dex, 2))
}

func (f *Fighter) Dead() bool { return f.HP <= 0 }

// NextLevel returns the first table entry above the current level.
func (f *Fighter) NextLevel() (LevelEntry, bool) {
	for _, e := range f.Levels {
		if e.Level > f.Level {
			return e, true
		}
	}
	return LevelEntry{}, false
}
