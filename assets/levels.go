package assets

import "crimson-depths/internal/component"

var (
	levelXP     = [...]int{0, 200, 500, 1000, 2000, 3500, 5000, 7000, 10000, 14000, 18000, 23000, 30000, 40000, 52000, 65000, 80000, 100000, 125000, 150000}
	attackBonus = [...]int{1, 2, 2, 3, 4, 4, 5, 6, 6, 6, 7, 7, 8, 8, 8, 9, 9, 10, 10, 10}
)

// PlayerLevels builds the player's level table. Levels up to 9 roll a d8 for
// hit points, later levels grant a flat 2. Every fourth level grants an extra
// attribute point.
func PlayerLevels() []component.LevelEntry {
	out := make([]component.LevelEntry, len(levelXP))
	for i := range levelXP {
		lvl := i + 1
		e := component.LevelEntry{
			Level:           lvl,
			XP:              levelXP[i],
			AttackBonus:     attackBonus[i],
			AttributePoints: 1,
		}
		if lvl <= 9 {
			e.HitDie = component.Dice{Count: 1, Sides: 8}
		} else {
			e.FlatHP = 2
		}
		if lvl%4 == 0 {
			e.AttributePoints++
		}
		if lvl == 1 {
			e.AttributePoints = 0
		}
		out[i] = e
	}
	return out
}
