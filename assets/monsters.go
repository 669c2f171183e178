package assets

import "crimson-depths/internal/component"

// MonsterTemplate is the static definition a monster is rolled from.
type MonsterTemplate struct {
	Glyph    rune
	Name     string
	HitDice  component.Dice
	Armor    int
	Dodge    int
	Damage   component.Dice
	XP       int
	MinLevel int
	MaxLevel int
}

// Hit dice shorthands: half and quarter hit dice roll 1d4 and 1d3.
var (
	hdQuarter = component.Dice{Count: 1, Sides: 3}
	hdHalf    = component.Dice{Count: 1, Sides: 4}
	hdOne     = component.Dice{Count: 1, Sides: 8}
)

func hd(n int) component.Dice { return component.Dice{Count: n, Sides: 8} }

func d(count, sides int) component.Dice { return component.Dice{Count: count, Sides: sides} }

// Monsters lists every monster, lowercase then uppercase. Order matters for
// XP lookup by name.
var Monsters = []MonsterTemplate{
	{Glyph: 'a', Name: "Ant", HitDice: hdHalf, Armor: 1, Dodge: 10, Damage: d(1, 3), XP: 25, MinLevel: 1, MaxLevel: 3},
	{Glyph: 'b', Name: "Bat", HitDice: hdHalf, Armor: 0, Dodge: 25, Damage: d(1, 2), XP: 25, MinLevel: 1, MaxLevel: 3},
	{Glyph: 'c', Name: "Cobra", HitDice: hdOne, Armor: 0, Dodge: 15, Damage: d(1, 4), XP: 50, MinLevel: 2, MaxLevel: 5},
	{Glyph: 'd', Name: "Wild Dog", HitDice: hdOne, Armor: 1, Dodge: 10, Damage: d(1, 4), XP: 50, MinLevel: 1, MaxLevel: 4},
	{Glyph: 'e', Name: "Eel", HitDice: hdHalf, Armor: 0, Dodge: 15, Damage: d(1, 3), XP: 25, MinLevel: 1, MaxLevel: 3},
	{Glyph: 'f', Name: "Giant Frog", HitDice: hdOne, Armor: 0, Dodge: 10, Damage: d(1, 4), XP: 50, MinLevel: 1, MaxLevel: 4},
	{Glyph: 'g', Name: "Goblin", HitDice: hdOne, Armor: 1, Dodge: 10, Damage: d(1, 6), XP: 50, MinLevel: 1, MaxLevel: 5},
	{Glyph: 'h', Name: "Hawk", HitDice: hdHalf, Armor: 1, Dodge: 25, Damage: d(1, 3), XP: 35, MinLevel: 2, MaxLevel: 4},
	{Glyph: 'i', Name: "Imp", HitDice: hdOne, Armor: 1, Dodge: 20, Damage: d(1, 4), XP: 60, MinLevel: 3, MaxLevel: 6},
	{Glyph: 'j', Name: "Jackal", HitDice: hdHalf, Armor: 1, Dodge: 15, Damage: d(1, 4), XP: 35, MinLevel: 1, MaxLevel: 4},
	{Glyph: 'k', Name: "Kobold", HitDice: hdHalf, Armor: 1, Dodge: 10, Damage: d(1, 4), XP: 35, MinLevel: 1, MaxLevel: 5},
	{Glyph: 'l', Name: "Giant Lizard", HitDice: hdOne, Armor: 1, Dodge: 10, Damage: d(1, 6), XP: 60, MinLevel: 2, MaxLevel: 5},
	{Glyph: 'm', Name: "Mold", HitDice: hdHalf, Armor: 0, Dodge: 0, Damage: d(1, 6), XP: 40, MinLevel: 1, MaxLevel: 6},
	{Glyph: 'n', Name: "Newt", HitDice: hdQuarter, Armor: 0, Dodge: 10, Damage: d(1, 2), XP: 15, MinLevel: 1, MaxLevel: 2},
	{Glyph: 'o', Name: "Orc", HitDice: hdOne, Armor: 0, Dodge: 10, Damage: d(1, 6), XP: 50, MinLevel: 1, MaxLevel: 7},
	{Glyph: 'p', Name: "Piranha", HitDice: hdHalf, Armor: 1, Dodge: 15, Damage: d(1, 4), XP: 40, MinLevel: 2, MaxLevel: 5},
	{Glyph: 'q', Name: "Quasit", HitDice: hdOne, Armor: 1, Dodge: 20, Damage: d(1, 4), XP: 65, MinLevel: 4, MaxLevel: 7},
	{Glyph: 'r', Name: "Giant Rat", HitDice: hdHalf, Armor: 0, Dodge: 15, Damage: d(1, 3), XP: 25, MinLevel: 1, MaxLevel: 4},
	{Glyph: 's', Name: "Snake", HitDice: hdOne, Armor: 1, Dodge: 15, Damage: d(1, 4), XP: 55, MinLevel: 2, MaxLevel: 6},
	{Glyph: 't', Name: "Giant Tick", HitDice: hdOne, Armor: 1, Dodge: 5, Damage: d(1, 4), XP: 55, MinLevel: 3, MaxLevel: 7},
	{Glyph: 'u', Name: "Minor Undead", HitDice: hdOne, Armor: 0, Dodge: 5, Damage: d(1, 4), XP: 55, MinLevel: 3, MaxLevel: 8},
	{Glyph: 'v', Name: "Viper", HitDice: hdOne, Armor: 1, Dodge: 15, Damage: d(1, 4), XP: 65, MinLevel: 3, MaxLevel: 7},
	{Glyph: 'w', Name: "Dire Weasel", HitDice: hdOne, Armor: 1, Dodge: 20, Damage: d(1, 4), XP: 55, MinLevel: 3, MaxLevel: 6},
	{Glyph: 'x', Name: "Minor Xorn", HitDice: hd(2), Armor: 2, Dodge: 5, Damage: d(1, 6), XP: 80, MinLevel: 5, MaxLevel: 9},
	{Glyph: 'y', Name: "Yelper", HitDice: hdOne, Armor: 1, Dodge: 10, Damage: d(1, 4), XP: 50, MinLevel: 2, MaxLevel: 5},
	{Glyph: 'z', Name: "Minor Zombie", HitDice: hdOne, Armor: 0, Dodge: 0, Damage: d(1, 6), XP: 60, MinLevel: 3, MaxLevel: 9},

	{Glyph: 'A', Name: "Auroch", HitDice: hd(3), Armor: 1, Dodge: 5, Damage: d(2, 6), XP: 150, MinLevel: 6, MaxLevel: 10},
	{Glyph: 'B', Name: "Basilisk", HitDice: hd(4), Armor: 2, Dodge: 10, Damage: d(1, 8), XP: 200, MinLevel: 8, MaxLevel: 12},
	{Glyph: 'C', Name: "Cyclops", HitDice: hd(6), Armor: 2, Dodge: 5, Damage: d(2, 8), XP: 300, MinLevel: 10, MaxLevel: 14},
	{Glyph: 'D', Name: "Young Dragon", HitDice: hd(8), Armor: 3, Dodge: 10, Damage: d(2, 6), XP: 600, MinLevel: 12, MaxLevel: 16},
	{Glyph: 'E', Name: "Elemental", HitDice: hd(4), Armor: 2, Dodge: 15, Damage: d(2, 6), XP: 250, MinLevel: 8, MaxLevel: 12},
	{Glyph: 'F', Name: "Frost Giant", HitDice: hd(7), Armor: 2, Dodge: 5, Damage: d(2, 8), XP: 450, MinLevel: 11, MaxLevel: 15},
	{Glyph: 'G', Name: "Golem", HitDice: hd(6), Armor: 3, Dodge: 0, Damage: d(2, 8), XP: 400, MinLevel: 10, MaxLevel: 15},
	{Glyph: 'H', Name: "Hydra", HitDice: hd(5), Armor: 2, Dodge: 5, Damage: d(2, 6), XP: 350, MinLevel: 9, MaxLevel: 14},
	{Glyph: 'I', Name: "Iron Golem", HitDice: hd(10), Armor: 4, Dodge: 0, Damage: d(3, 6), XP: 800, MinLevel: 15, MaxLevel: 20},
	{Glyph: 'J', Name: "Jabberwock", HitDice: hd(7), Armor: 2, Dodge: 15, Damage: d(2, 6), XP: 500, MinLevel: 12, MaxLevel: 17},
	{Glyph: 'K', Name: "Kraken", HitDice: hd(9), Armor: 3, Dodge: 10, Damage: d(2, 8), XP: 700, MinLevel: 14, MaxLevel: 19},
	{Glyph: 'L', Name: "Lich", HitDice: hd(10), Armor: 3, Dodge: 20, Damage: d(2, 8), XP: 1000, MinLevel: 16, MaxLevel: 20},
	{Glyph: 'M', Name: "Minotaur", HitDice: hd(5), Armor: 2, Dodge: 10, Damage: d(2, 6), XP: 300, MinLevel: 8, MaxLevel: 13},
	{Glyph: 'N', Name: "Naga", HitDice: hd(6), Armor: 2, Dodge: 15, Damage: d(2, 4), XP: 350, MinLevel: 9, MaxLevel: 14},
	{Glyph: 'O', Name: "Ogre", HitDice: hd(4), Armor: 2, Dodge: 5, Damage: d(2, 6), XP: 200, MinLevel: 7, MaxLevel: 12},
	{Glyph: 'P', Name: "Purple Worm", HitDice: hd(8), Armor: 3, Dodge: 0, Damage: d(2, 8), XP: 650, MinLevel: 13, MaxLevel: 18},
	{Glyph: 'Q', Name: "Quetzalcoatl", HitDice: hd(9), Armor: 3, Dodge: 20, Damage: d(2, 8), XP: 800, MinLevel: 15, MaxLevel: 20},
	{Glyph: 'R', Name: "Roper", HitDice: hd(7), Armor: 3, Dodge: 5, Damage: d(2, 6), XP: 450, MinLevel: 11, MaxLevel: 16},
	{Glyph: 'S', Name: "Sphinx", HitDice: hd(8), Armor: 3, Dodge: 15, Damage: d(2, 6), XP: 600, MinLevel: 13, MaxLevel: 18},
	{Glyph: 'T', Name: "Troll", HitDice: hd(3), Armor: 2, Dodge: 5, Damage: d(1, 8), XP: 150, MinLevel: 6, MaxLevel: 11},
	{Glyph: 'U', Name: "Umber Hulk", HitDice: hd(6), Armor: 2, Dodge: 5, Damage: d(2, 6), XP: 400, MinLevel: 10, MaxLevel: 15},
	{Glyph: 'V', Name: "Vampire", HitDice: hd(8), Armor: 3, Dodge: 20, Damage: d(2, 6), XP: 700, MinLevel: 14, MaxLevel: 19},
	{Glyph: 'W', Name: "Wyvern", HitDice: hd(7), Armor: 2, Dodge: 15, Damage: d(2, 6), XP: 500, MinLevel: 12, MaxLevel: 17},
	{Glyph: 'X', Name: "Xorn", HitDice: hd(5), Armor: 3, Dodge: 5, Damage: d(2, 6), XP: 350, MinLevel: 9, MaxLevel: 14},
	{Glyph: 'Y', Name: "Yeti", HitDice: hd(4), Armor: 2, Dodge: 10, Damage: d(2, 4), XP: 200, MinLevel: 8, MaxLevel: 13},
	{Glyph: 'Z', Name: "Zombie Dragon", HitDice: hd(10), Armor: 4, Dodge: 5, Damage: d(3, 6), XP: 1200, MinLevel: 17, MaxLevel: 20},
}

// MonstersForLevel returns the templates allowed on dungeon level n.
func MonstersForLevel(n int) []MonsterTemplate {
	var out []MonsterTemplate
	for _, m := range Monsters {
		if m.MinLevel <= n && n <= m.MaxLevel {
			out = append(out, m)
		}
	}
	return out
}

// MonsterByName returns the first template with exactly this name.
func MonsterByName(name string) (MonsterTemplate, bool) {
	for _, m := range Monsters {
		if m.Name == name {
			return m, true
		}
	}
	return MonsterTemplate{}, false
}
