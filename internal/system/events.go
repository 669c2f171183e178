package system

import (
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
)

// EventKind identifies what happened during a system call.
type EventKind uint8

const (
	EvAttack EventKind = iota
	EvHealed
	EvEquipped
	EvUnequipped
	EvDropped
	EvPickedUp
	EvNoRoom // inventory full, item left on the ground
	EvUnpaid // item picked up inside a shop
	EvAmmoMerged
	EvQuiverEmpty
	EvShopkeeperBlocks
	EvShopkeeperGreets
	EvShopkeeperRefuses
	EvShopkeeperChat
	EvPurchased
	EvSold
)

// Event is one thing that happened, for the turn engine to narrate. Systems
// never format messages themselves.
type Event struct {
	Kind   EventKind
	Actor  ecs.EntityID
	Target ecs.EntityID
	Name   string // item or creature involved
	Amount int    // hp healed, silver paid, ammo merged, price
	Slot   component.Slot
	Attack *AttackResult // set for EvAttack
}
