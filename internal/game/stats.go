package game

import (
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/system"
)

// PlayerStats is a read-only snapshot for the HUD.
type PlayerStats struct {
	HP, MaxHP       int
	Level, XP       int
	NextXP          int // 0 at the top of the table
	Attr            component.Attributes
	Armor, Dodge    int
	Damage          component.Dice
	AttackBonus     int
	AttributePoints int
	Silver          int
	Debt            int
}

func (e *Engine) Stats() PlayerStats {
	f := system.FighterOf(e.w, e.player)
	if f == nil {
		return PlayerStats{}
	}
	s := PlayerStats{
		HP: f.HP, MaxHP: f.MaxHP,
		Level: f.Level, XP: f.XP,
		Attr:            f.Attr,
		Armor:           f.TotalArmor(),
		Dodge:           f.Dodge,
		Damage:          f.Damage,
		AttackBonus:     f.AttackBonus,
		AttributePoints: f.AttributePoints,
		Silver:          system.Silver(e.w, e.player),
	}
	if next, ok := f.NextLevel(); ok {
		s.NextXP = next.XP
	}
	if inv := system.InventoryOf(e.w, e.player); inv != nil {
		s.Debt = system.Debt(e.w, inv)
	}
	return s
}

// ItemView describes one carried or worn item. Index is its position in
// the list UseItem, Equip and Drop take.
type ItemView struct {
	Index    int
	ID       ecs.EntityID
	Name     string
	Glyph    rune
	Kind     component.ItemKind
	Equipped bool
	Slot     component.Slot
	Price    int
	Unpaid   bool
	// Charge and Capacity are set for ammunition.
	Charge, Capacity int
}

func (e *Engine) itemView(index int, id ecs.EntityID, inv *component.Inventory) ItemView {
	v := ItemView{Index: index, ID: id, Name: system.NameOf(e.w, id)}
	if c := e.w.Get(id, component.CRenderable); c != nil {
		v.Glyph = c.(component.Renderable).Glyph
	}
	if it := system.ItemOf(e.w, id); it != nil {
		v.Kind, v.Price, v.Unpaid = it.Kind, it.Price, it.Unpaid
		if it.Ammo != nil {
			v.Charge, v.Capacity = it.Ammo.Charge, it.Ammo.Capacity
		}
	}
	v.Slot, v.Equipped = inv.SlotOf(id)
	return v
}

// Inventory lists carried items followed by worn ones.
func (e *Engine) Inventory() []ItemView {
	inv := system.InventoryOf(e.w, e.player)
	if inv == nil {
		return nil
	}
	var out []ItemView
	for i, id := range inv.All() {
		out = append(out, e.itemView(i, id, inv))
	}
	return out
}

// Equipment maps each occupied slot to its item. A two-handed weapon shows
// in both hands.
func (e *Engine) Equipment() map[component.Slot]ItemView {
	inv := system.InventoryOf(e.w, e.player)
	out := make(map[component.Slot]ItemView)
	if inv == nil {
		return out
	}
	for i, id := range inv.All() {
		for s, eq := range inv.Equipment {
			if eq == id {
				v := e.itemView(i, id, inv)
				v.Slot = component.Slot(s)
				out[component.Slot(s)] = v
			}
		}
	}
	return out
}
