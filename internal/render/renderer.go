// Package render draws an engine's state onto a tcell screen.
package render

import (
	"slices"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/game"
	"crimson-depths/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is how many rows at the bottom of the screen the HUD uses.
const hudRows = 5

// Source is the read-only view of a session the renderer draws.
type Source interface {
	Map() *gamemap.GameMap
	World() *ecs.World
	Player() ecs.EntityID
	Level() int
	Stats() game.PlayerStats
	Messages() []game.Message
	Inventory() []game.ItemView
	AutoExploring() bool
}

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize refits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(0, 0, w, max(1, h-hudRows))
}

// Camera returns the camera used for the last frame.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders tiles, entities and the HUD, centered on the player.
func (r *Renderer) DrawFrame(src Source) {
	r.screen.Clear()
	gmap := src.Map()
	if c := src.World().Get(src.Player(), component.CPosition); c != nil {
		p := c.(component.Position)
		r.camera.Center(p.X, p.Y)
	}
	r.drawMap(gmap)
	r.drawEntities(src.World(), gmap)
	r.DrawHUD(src)
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// drawMap renders visible and remembered tiles.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, style := lookFor(tile.Kind, tile.Visible)
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders this level's entities that stand on visible tiles,
// lowest render order first.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	entities := make([]renderableEntity, 0, len(gmap.Entities))
	for _, id := range gmap.Entities {
		posComp := w.Get(id, component.CPosition)
		rendComp := w.Get(id, component.CRenderable)
		if posComp == nil || rendComp == nil {
			continue
		}
		pos := posComp.(component.Position)
		if !gmap.IsVisible(pos.X, pos.Y) {
			continue
		}
		entities = append(entities, renderableEntity{pos: pos, rend: rendComp.(component.Renderable)})
	}

	slices.SortStableFunc(entities, func(a, b renderableEntity) int {
		return a.rend.RenderOrder - b.rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.Color).Background(tcell.ColorBlack)
		r.screen.SetContent(sx, sy, e.rend.Glyph, nil, style)
	}
}

// DrawCursor highlights world tile (x, y), used when aiming.
func (r *Renderer) DrawCursor(x, y int) {
	sx, sy, onScreen := r.camera.WorldToScreen(x, y)
	if !onScreen {
		return
	}
	mainc, combc, _, _ := r.screen.GetContent(sx, sy)
	if mainc == 0 {
		mainc = ' '
	}
	r.screen.SetContent(sx, sy, mainc, combc, tcell.StyleDefault.Reverse(true))
}

// drawText writes s at (x, y), clipped to width columns.
func (r *Renderer) drawText(x, y, width int, s string, style tcell.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	col := x
	for _, ch := range s {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
