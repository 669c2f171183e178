package component

import "crimson-depths/internal/ecs"

// EntityKind is the coarse category of an entity.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindItem
)

// Identity carries an entity's display name and kind.
type Identity struct {
	Name string
	Kind EntityKind
}

func (Identity) Type() ecs.ComponentType { return CIdentity }

// Wallet holds an entity's silver.
type Wallet struct {
	Silver int
}

func (Wallet) Type() ecs.ComponentType { return CWallet }
