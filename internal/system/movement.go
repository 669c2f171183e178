package system

import (
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall or out-of-bounds
	MoveAttack                     // bumped a blocking creature
	MoveInteract                   // bumped a shopkeeper
)

// TryMove attempts to move entity id by (dx, dy) on gmap.
// Returns the outcome and (if MoveAttack or MoveInteract) the target entity.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if other := BlockingAt(w, gmap, nx, ny, id); other != ecs.NilEntity {
		if IsShopkeeper(w, other) {
			return MoveInteract, other
		}
		return MoveAttack, other
	}

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// PositionOf returns an entity's position; ok is false if it has none.
func PositionOf(w *ecs.World, id ecs.EntityID) (component.Position, bool) {
	c := w.Get(id, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}

// BlockingAt returns the first blocking entity on this level at (x, y),
// ignoring skip. Returns NilEntity when the tile is free.
func BlockingAt(w *ecs.World, gmap *gamemap.GameMap, x, y int, skip ecs.EntityID) ecs.EntityID {
	for _, id := range gmap.Entities {
		if id == skip || !w.Has(id, component.CTagBlocking) {
			continue
		}
		if p, ok := PositionOf(w, id); ok && p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// ItemsAt lists the ground items on this level at (x, y) in entity-list order.
func ItemsAt(w *ecs.World, gmap *gamemap.GameMap, x, y int) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range gmap.Entities {
		if !w.Has(id, component.CItem) {
			continue
		}
		if p, ok := PositionOf(w, id); ok && p.X == x && p.Y == y {
			out = append(out, id)
		}
	}
	return out
}

// IsShopkeeper reports whether id runs the shopkeeper controller.
func IsShopkeeper(w *ecs.World, id ecs.EntityID) bool {
	ai := AIOf(w, id)
	return ai != nil && ai.Kind == component.AIShopkeeper
}

// Chebyshev is max(|dx|, |dy|).
func Chebyshev(a, b component.Position) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Component accessors for the pointer-stored components.

func FighterOf(w *ecs.World, id ecs.EntityID) *component.Fighter {
	if c := w.Get(id, component.CFighter); c != nil {
		return c.(*component.Fighter)
	}
	return nil
}

func AIOf(w *ecs.World, id ecs.EntityID) *component.AI {
	if c := w.Get(id, component.CAI); c != nil {
		return c.(*component.AI)
	}
	return nil
}

func ItemOf(w *ecs.World, id ecs.EntityID) *component.Item {
	if c := w.Get(id, component.CItem); c != nil {
		return c.(*component.Item)
	}
	return nil
}

func InventoryOf(w *ecs.World, id ecs.EntityID) *component.Inventory {
	if c := w.Get(id, component.CInventory); c != nil {
		return c.(*component.Inventory)
	}
	return nil
}

// NameOf returns an entity's display name, or "something".
func NameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CIdentity); c != nil {
		return c.(component.Identity).Name
	}
	return "something"
}
