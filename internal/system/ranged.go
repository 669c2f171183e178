package system

import (
	"math/rand"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

// Fire shoots the wielded missile weapon at (tx, ty). One shot is spent
// before the roll, so a miss or an empty target tile still costs ammunition.
func Fire(w *ecs.World, gmap *gamemap.GameMap, r *rand.Rand, shooter ecs.EntityID, tx, ty int) ([]Event, error) {
	inv := InventoryOf(w, shooter)
	if inv == nil {
		return nil, ErrNoRangedWeapon
	}
	weapon := ItemOf(w, inv.Equipment[component.SlotRightHand])
	if weapon == nil || !weapon.IsRanged() {
		return nil, ErrNoRangedWeapon
	}
	quiver := ItemOf(w, inv.Equipment[component.SlotQuiver])
	if quiver == nil || quiver.Ammo == nil || quiver.Ammo.Charge <= 0 {
		return nil, ErrNoAmmo
	}
	if quiver.Ammo.Ammo != weapon.Weapon.Ammo {
		return nil, ErrWrongAmmo
	}
	from, ok := PositionOf(w, shooter)
	if !ok || (from.X == tx && from.Y == ty) {
		return nil, ErrNoTarget
	}
	if Chebyshev(from, component.Position{X: tx, Y: ty}) > weapon.Weapon.Range {
		return nil, ErrOutOfRange
	}
	if !gmap.IsVisible(tx, ty) {
		return nil, ErrNoTarget
	}

	quiverName := NameOf(w, inv.Equipment[component.SlotQuiver])
	_, depleted, err := UseAmmo(w, inv)
	if err != nil {
		return nil, err
	}

	var res AttackResult
	if target := CreatureAt(w, gmap, tx, ty, shooter); target != ecs.NilEntity {
		res = ResolveAttack(w, r, shooter, target, true)
	} else {
		res = AttackResult{Outcome: AttackMiss, Attacker: shooter, AttackerName: NameOf(w, shooter), Ranged: true}
	}
	events := []Event{{Kind: EvAttack, Actor: shooter, Target: res.Defender, Attack: &res}}
	if depleted {
		events = append(events, Event{Kind: EvQuiverEmpty, Actor: shooter, Name: quiverName, Slot: component.SlotQuiver})
	}
	return events, nil
}

// CreatureAt returns a living fighter on this level at (x, y), ignoring skip.
func CreatureAt(w *ecs.World, gmap *gamemap.GameMap, x, y int, skip ecs.EntityID) ecs.EntityID {
	for _, id := range gmap.Entities {
		if id == skip || FighterOf(w, id) == nil {
			continue
		}
		if p, ok := PositionOf(w, id); ok && p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// NearestVisibleHostile returns the closest hostile monster standing in view,
// by Chebyshev distance with ties going to the earlier entity.
func NearestVisibleHostile(w *ecs.World, gmap *gamemap.GameMap, from component.Position) (ecs.EntityID, bool) {
	best, bestDist := ecs.NilEntity, 0
	for _, id := range gmap.Entities {
		ai := AIOf(w, id)
		if ai == nil || ai.Kind != component.AIHostile {
			continue
		}
		p, ok := PositionOf(w, id)
		if !ok || !gmap.IsVisible(p.X, p.Y) {
			continue
		}
		if d := Chebyshev(from, p); best == ecs.NilEntity || d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != ecs.NilEntity
}
