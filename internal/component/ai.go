package component

import (
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

// AIKind selects the behavior the turn engine runs for an entity.
type AIKind uint8

const (
	AIHostile AIKind = iota
	AIShopkeeper
)

// GuardState is where a shopkeeper stands relative to its door.
type GuardState uint8

const (
	GuardBlocking GuardState = iota // standing in the doorway
	GuardAside                      // inside the shop, doorway clear
)

// ShopGuard is the data a shopkeeper needs to watch its shop.
type ShopGuard struct {
	Shop   gamemap.ShopType
	Bounds gamemap.Rect
	Door   gamemap.Point
	State  GuardState
}

type AI struct {
	Owner
	Kind  AIKind
	Guard *ShopGuard // set for AIShopkeeper only
}

func (*AI) Type() ecs.ComponentType { return CAI }

// NewHostileAI returns a pursue-and-melee controller.
func NewHostileAI() *AI { return &AI{Kind: AIHostile} }

// NewShopkeeperAI returns a controller guarding the given building.
func NewShopkeeperAI(b gamemap.Building) *AI {
	return &AI{
		Kind: AIShopkeeper,
		Guard: &ShopGuard{
			Shop:   b.Shop,
			Bounds: b.Bounds(),
			Door:   b.Door,
			State:  GuardBlocking,
		},
	}
}
