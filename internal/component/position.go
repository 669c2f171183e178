package component

import "crimson-depths/internal/ecs"

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
