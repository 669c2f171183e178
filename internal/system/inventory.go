package system

import (
	"slices"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

// Add puts an item in the carried list.
func Add(inv *component.Inventory, item ecs.EntityID) error {
	if inv.Full() {
		return ErrInventoryFull
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// ItemIndex returns the item at index in the inventory view: carried items
// first, then equipped items in slot order.
func ItemIndex(inv *component.Inventory, index int) (ecs.EntityID, error) {
	all := inv.All()
	if index < 0 || index >= len(all) {
		return ecs.NilEntity, ErrNotCarried
	}
	return all[index], nil
}

// targetSlots returns the slots an item fills when equipped to slot.
func targetSlots(it *component.Item, slot component.Slot) ([]component.Slot, bool) {
	natural, ok := it.Slot()
	if !ok {
		return nil, false
	}
	switch {
	case it.TwoHanded():
		if !slot.IsHand() {
			return nil, false
		}
		return []component.Slot{component.SlotRightHand, component.SlotLeftHand}, true
	case it.Weapon != nil && natural == component.SlotRightHand:
		if !slot.IsHand() {
			return nil, false
		}
	case slot != natural:
		return nil, false
	}
	return []component.Slot{slot}, true
}

// feetFree reports whether owner stands on a tile with no ground item.
func feetFree(w *ecs.World, gmap *gamemap.GameMap, owner ecs.EntityID) (component.Position, bool) {
	pos, ok := PositionOf(w, owner)
	if !ok {
		return pos, false
	}
	return pos, len(ItemsAt(w, gmap, pos.X, pos.Y)) == 0
}

// clearSlots empties every slot holding id.
func clearSlots(inv *component.Inventory, id ecs.EntityID) {
	for s := range inv.Equipment {
		if inv.Equipment[s] == id {
			inv.Equipment[s] = ecs.NilEntity
		}
	}
}

// placeOnGround puts an item on the level at (x, y).
func placeOnGround(w *ecs.World, gmap *gamemap.GameMap, item ecs.EntityID, x, y int) {
	w.Add(item, component.Position{X: x, Y: y})
	gmap.AddEntity(item)
}

// liftFromGround takes an item off the level.
func liftFromGround(w *ecs.World, gmap *gamemap.GameMap, item ecs.EntityID) {
	w.Remove(item, component.CPosition)
	gmap.RemoveEntity(item)
}

// Equip wears a carried item in slot. Whatever the item displaces goes back
// to the pack, and when the pack cannot take it, to the owner's feet. The
// whole plan is checked before anything moves.
func Equip(w *ecs.World, gmap *gamemap.GameMap, owner, item ecs.EntityID, slot component.Slot) ([]Event, error) {
	inv := InventoryOf(w, owner)
	if inv == nil || !inv.Carries(item) {
		return nil, ErrNotCarried
	}
	it := ItemOf(w, item)
	if it == nil || !it.Equippable() {
		return nil, ErrNotEquippable
	}
	targets, ok := targetSlots(it, slot)
	if !ok {
		return nil, ErrWrongSlot
	}

	var displaced []ecs.EntityID
	for _, s := range targets {
		if e := inv.Equipment[s]; e != ecs.NilEntity && !slices.Contains(displaced, e) {
			displaced = append(displaced, e)
		}
	}
	// The equipped item frees its own carried slot.
	free := inv.Capacity - (len(inv.Items) - 1)
	toPack := min(len(displaced), free)
	var feet component.Position
	if len(displaced) > toPack {
		var clear bool
		feet, clear = feetFree(w, gmap, owner)
		if len(displaced)-toPack > 1 || !clear {
			return nil, ErrFeetOccupied
		}
	}

	inv.Take(item)
	var events []Event
	for i, d := range displaced {
		clearSlots(inv, d)
		ds, _ := ItemOf(w, d).Slot()
		if i < toPack {
			inv.Items = append(inv.Items, d)
			events = append(events, Event{Kind: EvUnequipped, Actor: owner, Target: d, Name: NameOf(w, d), Slot: ds})
			continue
		}
		placeOnGround(w, gmap, d, feet.X, feet.Y)
		events = append(events, Event{Kind: EvDropped, Actor: owner, Target: d, Name: NameOf(w, d), Slot: ds})
	}
	for _, s := range targets {
		inv.Equipment[s] = item
	}
	SyncEquipmentStats(w, owner)
	events = append(events, Event{Kind: EvEquipped, Actor: owner, Target: item, Name: NameOf(w, item), Slot: slot})
	return events, nil
}

// Unequip returns the item in slot to the pack, or drops it when the pack is
// full. A two-handed weapon leaves both hands.
func Unequip(w *ecs.World, gmap *gamemap.GameMap, owner ecs.EntityID, slot component.Slot) ([]Event, error) {
	inv := InventoryOf(w, owner)
	if inv == nil || slot >= component.NumSlots || inv.Equipment[slot] == ecs.NilEntity {
		return nil, ErrSlotEmpty
	}
	id := inv.Equipment[slot]
	if inv.Full() {
		feet, clear := feetFree(w, gmap, owner)
		if !clear {
			return nil, ErrFeetOccupied
		}
		clearSlots(inv, id)
		placeOnGround(w, gmap, id, feet.X, feet.Y)
		SyncEquipmentStats(w, owner)
		return []Event{{Kind: EvDropped, Actor: owner, Target: id, Name: NameOf(w, id), Slot: slot}}, nil
	}
	clearSlots(inv, id)
	inv.Items = append(inv.Items, id)
	SyncEquipmentStats(w, owner)
	return []Event{{Kind: EvUnequipped, Actor: owner, Target: id, Name: NameOf(w, id), Slot: slot}}, nil
}

// Drop puts the item at index in the inventory view on the ground. Equipped
// items come off first.
func Drop(w *ecs.World, gmap *gamemap.GameMap, owner ecs.EntityID, index int) ([]Event, error) {
	inv := InventoryOf(w, owner)
	if inv == nil {
		return nil, ErrNotCarried
	}
	id, err := ItemIndex(inv, index)
	if err != nil {
		return nil, err
	}
	feet, clear := feetFree(w, gmap, owner)
	if !clear {
		return nil, ErrFeetOccupied
	}
	if !inv.Take(id) {
		clearSlots(inv, id)
		SyncEquipmentStats(w, owner)
	}
	placeOnGround(w, gmap, id, feet.X, feet.Y)
	return []Event{{Kind: EvDropped, Actor: owner, Target: id, Name: NameOf(w, id)}}, nil
}

// UseItem applies the item at index in the inventory view. Consumables are
// used up; gear is equipped to its natural slot or taken off if worn.
func UseItem(w *ecs.World, gmap *gamemap.GameMap, owner ecs.EntityID, index int) ([]Event, error) {
	inv := InventoryOf(w, owner)
	if inv == nil {
		return nil, ErrNotCarried
	}
	id, err := ItemIndex(inv, index)
	if err != nil {
		return nil, err
	}
	it := ItemOf(w, id)
	if it == nil {
		return nil, ErrCannotUse
	}

	switch {
	case it.Use != nil:
		return consume(w, inv, owner, id, it)
	case it.Equippable():
		if s, worn := inv.SlotOf(id); worn {
			return Unequip(w, gmap, owner, s)
		}
		s, _ := it.Slot()
		return Equip(w, gmap, owner, id, s)
	}
	return nil, ErrCannotUse
}

func consume(w *ecs.World, inv *component.Inventory, owner, id ecs.EntityID, it *component.Item) ([]Event, error) {
	switch it.Use.Effect {
	case component.EffectHeal:
		f := FighterOf(w, owner)
		if f == nil {
			return nil, ErrCannotUse
		}
		if f.HP >= f.MaxHP {
			return nil, ErrFullHealth
		}
		name := NameOf(w, id)
		healed := Heal(f, it.Use.Amount)
		inv.Take(id)
		w.DestroyEntity(id)
		return []Event{{Kind: EvHealed, Actor: owner, Target: id, Name: name, Amount: healed}}, nil
	}
	return nil, ErrCannotUse
}

// UseAmmo spends one shot from the equipped quiver. An emptied quiver is
// removed from the inventory and destroyed.
func UseAmmo(w *ecs.World, inv *component.Inventory) (remaining int, depleted bool, err error) {
	q := inv.Equipment[component.SlotQuiver]
	it := ItemOf(w, q)
	if q == ecs.NilEntity || it == nil || it.Ammo == nil || it.Ammo.Charge <= 0 {
		return 0, false, ErrNoAmmo
	}
	it.Ammo.Charge--
	if it.Ammo.Charge > 0 {
		return it.Ammo.Charge, false, nil
	}
	inv.Equipment[component.SlotQuiver] = ecs.NilEntity
	inv.Take(q)
	w.DestroyEntity(q)
	return 0, true, nil
}

// PickUp collects every item on the owner's tile. Items picked up inside a
// shop become unpaid. Empty slots are filled automatically and loose ammo
// tops up a matching quiver.
func PickUp(w *ecs.World, gmap *gamemap.GameMap, owner ecs.EntityID) []Event {
	inv := InventoryOf(w, owner)
	pos, ok := PositionOf(w, owner)
	if inv == nil || !ok {
		return nil
	}
	_, inShop := gmap.BuildingAt(pos.X, pos.Y)

	var events []Event
	for _, id := range ItemsAt(w, gmap, pos.X, pos.Y) {
		it := ItemOf(w, id)
		name := NameOf(w, id)

		if it.Ammo != nil && !inShop && !it.Unpaid {
			if n := mergeAmmo(w, inv, it); n > 0 {
				events = append(events, Event{Kind: EvAmmoMerged, Actor: owner, Target: id, Name: name, Amount: n})
				if it.Ammo.Charge == 0 {
					gmap.RemoveEntity(id)
					w.DestroyEntity(id)
					continue
				}
			}
		}

		if err := Add(inv, id); err != nil {
			events = append(events, Event{Kind: EvNoRoom, Actor: owner, Target: id, Name: name})
			continue
		}
		liftFromGround(w, gmap, id)
		events = append(events, Event{Kind: EvPickedUp, Actor: owner, Target: id, Name: name})

		if inShop {
			if it.Price == 0 {
				it.Price = DefaultPrice(it.Kind)
			}
			it.Unpaid = true
			events = append(events, Event{Kind: EvUnpaid, Actor: owner, Target: id, Name: name, Amount: it.Price})
		}

		if slot, ok := it.Slot(); ok && slotsFree(inv, it, slot) {
			evs, err := Equip(w, gmap, owner, id, slot)
			if err == nil {
				events = append(events, evs...)
			}
		}
	}
	return events
}

func slotsFree(inv *component.Inventory, it *component.Item, slot component.Slot) bool {
	if it.TwoHanded() {
		return inv.Equipment[component.SlotRightHand] == ecs.NilEntity &&
			inv.Equipment[component.SlotLeftHand] == ecs.NilEntity
	}
	return inv.Equipment[slot] == ecs.NilEntity
}

// mergeAmmo moves shots from a loose quiver into the equipped one of the
// same type and returns how many moved.
func mergeAmmo(w *ecs.World, inv *component.Inventory, loose *component.Item) int {
	q := ItemOf(w, inv.Equipment[component.SlotQuiver])
	if q == nil || q.Ammo == nil || q.Ammo.Ammo != loose.Ammo.Ammo {
		return 0
	}
	n := min(q.Ammo.Capacity-q.Ammo.Charge, loose.Ammo.Charge)
	if n <= 0 {
		return 0
	}
	q.Ammo.Charge += n
	loose.Ammo.Charge -= n
	return n
}

// SyncEquipmentStats derives the owner's damage dice, armor bonus and dodge
// from what is currently equipped.
func SyncEquipmentStats(w *ecs.World, owner ecs.EntityID) {
	f, inv := FighterOf(w, owner), InventoryOf(w, owner)
	if f == nil || inv == nil {
		return
	}
	f.Damage = f.BaseDamage
	if it := ItemOf(w, inv.Equipment[component.SlotRightHand]); it != nil && it.Weapon != nil {
		f.Damage = it.Weapon.Damage
	}
	armor, dodge := 0, 0
	for _, id := range inv.Equipped() {
		if it := ItemOf(w, id); it != nil {
			armor += it.ArmorBonus()
			dodge += it.DodgeBonus()
		}
	}
	f.ArmorBonus = armor
	f.DodgeBonus = dodge
	f.RecomputeDodge()
}
