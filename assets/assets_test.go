package assets

import (
	"testing"
	"unicode"
)

func TestMonsterTableCoversAlphabet(t *testing.T) {
	if len(Monsters) != 52 {
		t.Fatalf("len(Monsters) = %d, want 52", len(Monsters))
	}
	seen := map[rune]bool{}
	for _, m := range Monsters {
		if !unicode.IsLetter(m.Glyph) {
			t.Errorf("%s: glyph %q is not a letter", m.Name, m.Glyph)
		}
		if seen[m.Glyph] {
			t.Errorf("duplicate glyph %q", m.Glyph)
		}
		seen[m.Glyph] = true
		if m.MinLevel > m.MaxLevel {
			t.Errorf("%s: level range %d..%d inverted", m.Name, m.MinLevel, m.MaxLevel)
		}
		if m.HitDice.Count < 1 || m.Damage.Count < 1 {
			t.Errorf("%s: empty dice", m.Name)
		}
	}
}

func TestEveryDungeonLevelHasMonsters(t *testing.T) {
	for lvl := 1; lvl <= 20; lvl++ {
		if len(MonstersForLevel(lvl)) == 0 {
			t.Errorf("level %d has no eligible monsters", lvl)
		}
	}
}

func TestPlayerLevels(t *testing.T) {
	table := PlayerLevels()
	if len(table) != 20 {
		t.Fatalf("len = %d, want 20", len(table))
	}
	if table[1].Level != 2 || table[1].XP != 200 || table[1].AttackBonus != 2 {
		t.Errorf("level 2 entry = %+v", table[1])
	}
	if table[9].HitDie.Count != 0 || table[9].FlatHP != 2 {
		t.Errorf("level 10 should grant flat HP, got %+v", table[9])
	}
	for i := 1; i < len(table); i++ {
		if table[i].XP <= table[i-1].XP {
			t.Errorf("xp not increasing at level %d", table[i].Level)
		}
	}
}

func TestShopPoolsArePriced(t *testing.T) {
	for shop, pool := range ShopPools {
		for _, key := range pool {
			if Prices[key] <= 0 {
				t.Errorf("%s stocks %q with no price", shop, key)
			}
			_, w := WeaponByKey(key)
			_, a := ArmorByKey(key)
			_, q := AmmoByKey(key)
			if !w && !a && !q && key != HealingPotionKey {
				t.Errorf("%s stocks unknown item %q", shop, key)
			}
		}
	}
}

func TestMonsterByName(t *testing.T) {
	m, ok := MonsterByName("Young Dragon")
	if !ok || m.Glyph != 'D' || m.XP != 600 {
		t.Errorf("MonsterByName(Young Dragon) = %+v, %v", m, ok)
	}
	if _, ok := MonsterByName("Dragon"); ok {
		t.Error("lookup must be exact")
	}
}
