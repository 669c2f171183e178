package gamemap

import (
	"slices"

	"crimson-depths/internal/ecs"
)

// GameMap holds the tile grid, rooms, buildings and entity list for one level.
type GameMap struct {
	Width, Height int
	Level         int
	Tiles         [][]Tile
	Rooms         []Rect
	Buildings     []Building
	UpStairs      *Point
	DownStairs    *Point
	// Entities on this level in turn order.
	Entities []ecs.EntityID
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	return NewFilled(width, height, TileWall)
}

// NewFilled creates a GameMap with every tile set to kind.
func NewFilled(width, height int, kind TileKind) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: kind}
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Kind returns the tile kind at (x, y); out of bounds reads as wall.
func (m *GameMap) Kind(x, y int) TileKind {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x].Kind
}

// Set changes the kind of the tile at (x, y), keeping its visibility state.
func (m *GameMap) Set(x, y int, kind TileKind) {
	m.Tiles[y][x].Kind = kind
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Kind.Walkable()
}

// BlocksSight returns true for out-of-bounds and opaque tiles.
func (m *GameMap) BlocksSight(x, y int) bool {
	return !m.InBounds(x, y) || m.Tiles[y][x].Kind.BlocksSight()
}

// IsVisible reports whether (x, y) is in the current field of view.
func (m *GameMap) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Visible
}

// PlaceStairs puts a staircase of the given kind at (x, y). A previously
// placed staircase of the same kind reverts to floor so each level keeps at
// most one of each.
func (m *GameMap) PlaceStairs(kind TileKind, x, y int) {
	slot := &m.DownStairs
	if kind == TileStairsUp {
		slot = &m.UpStairs
	} else if kind != TileStairsDown {
		return
	}
	if old := *slot; old != nil && m.Kind(old.X, old.Y) == kind {
		m.Set(old.X, old.Y, TileFloor)
	}
	m.Set(x, y, kind)
	*slot = &Point{X: x, Y: y}
}

// ClearVisible resets the visible layer.
func (m *GameMap) ClearVisible() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}
}

// RevealAll marks every tile explored.
func (m *GameMap) RevealAll() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Explored = true
		}
	}
}

// AddEntity appends id to the level's entity list if it is not already there.
func (m *GameMap) AddEntity(id ecs.EntityID) {
	if !m.HasEntity(id) {
		m.Entities = append(m.Entities, id)
	}
}

// RemoveEntity drops id from the entity list, preserving order.
func (m *GameMap) RemoveEntity(id ecs.EntityID) {
	if i := slices.Index(m.Entities, id); i >= 0 {
		m.Entities = slices.Delete(m.Entities, i, i+1)
	}
}

// HasEntity reports whether id is on this level.
func (m *GameMap) HasEntity(id ecs.EntityID) bool {
	return slices.Contains(m.Entities, id)
}

// BuildingAt returns the building whose shop floor contains (x, y).
func (m *GameMap) BuildingAt(x, y int) (Building, bool) {
	for _, b := range m.Buildings {
		if b.Bounds().Contains(x, y) {
			return b, true
		}
	}
	return Building{}, false
}
