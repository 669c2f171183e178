package system

import (
	"math/rand"
	"strings"

	"crimson-depths/assets"
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/logger"
	"crimson-depths/internal/rng"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// AttackOutcome is how an attack ended.
type AttackOutcome uint8

const (
	AttackNone AttackOutcome = iota // attacker or defender cannot fight
	AttackMiss
	AttackHit
	AttackKill
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Outcome      AttackOutcome
	Attacker     ecs.EntityID
	Defender     ecs.EntityID
	AttackerName string
	DefenderName string // name before death
	Ranged       bool

	Damage int // rolled, before armor
	Dealt  int // subtracted from hp

	XP           int
	LeveledUp    bool
	NewLevel     int
	HPGain       int
	PlayerKilled bool
}

// ResolveAttack runs one attack: a dodge roll, a damage roll with the
// strength (melee) or dexterity (ranged) bonus, then armor. A monster brought
// to 0 hp becomes a corpse and, when the player struck it, pays out xp.
func ResolveAttack(w *ecs.World, r *rand.Rand, attacker, defender ecs.EntityID, ranged bool) AttackResult {
	af, df := FighterOf(w, attacker), FighterOf(w, defender)
	if af == nil || df == nil {
		return AttackResult{}
	}
	res := AttackResult{
		Attacker:     attacker,
		Defender:     defender,
		AttackerName: NameOf(w, attacker),
		DefenderName: NameOf(w, defender),
		Ranged:       ranged,
	}

	if rng.RandInt(r, 1, 100) <= df.Dodge {
		res.Outcome = AttackMiss
		return res
	}

	bonus := component.Modifier(af.Attr.Str, 5)
	if ranged {
		bonus = component.Modifier(af.Attr.Dex, 5)
	}
	res.Damage = af.Damage.Roll(r) + bonus
	res.Dealt = TakeDamage(df, res.Damage)
	res.Outcome = AttackHit
	if !df.Dead() {
		return res
	}

	res.Outcome = AttackKill
	if w.Has(defender, component.CTagPlayer) {
		res.PlayerKilled = true
		return res
	}
	Kill(w, defender)

	if w.Has(attacker, component.CTagPlayer) {
		res.XP = LookupXP(res.DefenderName)
		if res.XP > 0 {
			if lv, ok := GainXP(r, af, res.XP); ok {
				res.LeveledUp = true
				res.NewLevel = lv.Level
				res.HPGain = lv.HPGain
			}
		}
	}
	logger.For("combat").WithFields(logrus.Fields{
		"killer": res.AttackerName,
		"victim": res.DefenderName,
		"xp":     res.XP,
	}).Debug("creature killed")
	return res
}

// TakeDamage applies armor with a floor of one point and returns what was
// subtracted from hp.
func TakeDamage(f *component.Fighter, amount int) int {
	dealt := max(1, amount-f.TotalArmor())
	f.HP -= dealt
	return dealt
}

// Heal restores up to amount hp without passing MaxHP and returns the gain.
func Heal(f *component.Fighter, amount int) int {
	before := f.HP
	f.HP = min(f.MaxHP, f.HP+amount)
	return f.HP - before
}

// Kill turns a creature into an inert corpse that stays on the level.
func Kill(w *ecs.World, id ecs.EntityID) {
	name := NameOf(w, id)
	w.Remove(id, component.CFighter)
	w.Remove(id, component.CAI)
	w.Remove(id, component.CTagBlocking)
	w.Add(id, component.Renderable{Glyph: '%', Color: tcell.ColorMaroon, RenderOrder: component.OrderCorpse})
	w.Add(id, component.Identity{Name: "remains of " + name, Kind: component.KindEnemy})
}

// LookupXP finds the xp value for a slain creature by name. The first monster
// whose name appears in the given one wins, ignoring case.
func LookupXP(name string) int {
	lower := strings.ToLower(name)
	for _, m := range assets.Monsters {
		if strings.Contains(lower, strings.ToLower(m.Name)) {
			return m.XP
		}
	}
	switch {
	case strings.Contains(name, "Orc"):
		return 50
	case strings.Contains(name, "Troll"):
		return 100
	}
	return 0
}

// LevelUp describes one level gained.
type LevelUp struct {
	Level       int
	HPGain      int
	AttackBonus int
	Points      int
}

// GainXP adds xp and applies at most one level-up: the first table entry
// above the current level whose threshold has been reached.
func GainXP(r *rand.Rand, f *component.Fighter, xp int) (LevelUp, bool) {
	f.XP += xp
	for _, e := range f.Levels {
		if e.Level <= f.Level || e.XP > f.XP {
			continue
		}
		gain := e.FlatHP
		if e.HitDie.Count > 0 {
			gain = e.HitDie.Roll(r)
		}
		gain = max(1, gain+component.Modifier(f.Attr.Con, 2))

		f.Level = e.Level
		f.MaxHP += gain
		f.HP += gain
		f.AttackBonus = e.AttackBonus
		f.AttributePoints += e.AttributePoints
		return LevelUp{Level: e.Level, HPGain: gain, AttackBonus: e.AttackBonus, Points: e.AttributePoints}, true
	}
	return LevelUp{}, false
}
