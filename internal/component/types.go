package component

import "crimson-depths/internal/ecs"

const (
	CPosition ecs.ComponentType = iota + 1
	CRenderable
	CIdentity
	CFighter
	CAI
	CInventory
	CItem
	CWallet
	CTagPlayer
	CTagBlocking
)

// Owner records the entity a component is attached to. Embed it by value in
// components stored as pointers; ecs.World binds it on Add.
type Owner struct {
	id ecs.EntityID
}

func (o *Owner) OwnerID() ecs.EntityID    { return o.id }
func (o *Owner) SetOwner(id ecs.EntityID) { o.id = id }
