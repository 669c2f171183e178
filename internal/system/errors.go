package system

import "errors"

// Inventory failures.
var (
	ErrInventoryFull = errors.New("inventory full")
	ErrFeetOccupied  = errors.New("something is already lying here")
	ErrNotEquippable = errors.New("item cannot be equipped")
	ErrWrongSlot     = errors.New("item does not fit that slot")
	ErrSlotEmpty     = errors.New("nothing equipped there")
	ErrNotCarried    = errors.New("item not carried")
	ErrCannotUse     = errors.New("item cannot be used")
	ErrFullHealth    = errors.New("already at full health")
)

// Economy failures.
var (
	ErrInsufficientFunds = errors.New("not enough silver")
	ErrNoUnpaidItems     = errors.New("no unpaid items")
	ErrNotInShop         = errors.New("not inside a shop")
	ErrNothingToSell     = errors.New("nothing here to sell")
)

// Ranged attack failures.
var (
	ErrNoRangedWeapon = errors.New("no ranged weapon equipped")
	ErrNoAmmo         = errors.New("no ammunition equipped")
	ErrWrongAmmo      = errors.New("ammunition does not fit the weapon")
	ErrOutOfRange     = errors.New("target out of range")
	ErrNoTarget       = errors.New("no target")
)
