package component

import (
	"crimson-depths/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Draw order; higher draws on top.
const (
	OrderCorpse = iota
	OrderItem
	OrderActor
)

type Renderable struct {
	Glyph       rune
	Color       tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
