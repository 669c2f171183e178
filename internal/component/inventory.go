package component

import (
	"slices"

	"crimson-depths/internal/ecs"
)

// Inventory is a bounded carried list plus equipment slots. An item is never
// both carried and equipped; a two-handed weapon fills both hand slots.
type Inventory struct {
	Owner
	Capacity  int
	Items     []ecs.EntityID
	Equipment [NumSlots]ecs.EntityID
}

func (*Inventory) Type() ecs.ComponentType { return CInventory }

func NewInventory(capacity int) *Inventory {
	return &Inventory{Capacity: capacity}
}

func (inv *Inventory) Full() bool { return len(inv.Items) >= inv.Capacity }

func (inv *Inventory) Carries(id ecs.EntityID) bool { return slices.Contains(inv.Items, id) }

// Take removes id from the carried list and reports whether it was there.
func (inv *Inventory) Take(id ecs.EntityID) bool {
	i := slices.Index(inv.Items, id)
	if i < 0 {
		return false
	}
	inv.Items = slices.Delete(inv.Items, i, i+1)
	return true
}

// SlotOf returns the first slot holding id.
func (inv *Inventory) SlotOf(id ecs.EntityID) (Slot, bool) {
	if id == ecs.NilEntity {
		return 0, false
	}
	for s, e := range inv.Equipment {
		if e == id {
			return Slot(s), true
		}
	}
	return 0, false
}

// Equipped lists each equipped item once, in slot order.
func (inv *Inventory) Equipped() []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range inv.Equipment {
		if id != ecs.NilEntity && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// All lists carried then equipped items, each once.
func (inv *Inventory) All() []ecs.EntityID {
	return append(slices.Clone(inv.Items), inv.Equipped()...)
}
