package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileCorridor
	TileStairsDown
	TileStairsUp
	TileGrass
	TileTownWall
)

var tileNames = [...]string{"wall", "floor", "corridor", "stairs down", "stairs up", "grass", "town wall"}

func (k TileKind) String() string {
	if int(k) < len(tileNames) {
		return tileNames[k]
	}
	return "unknown"
}

// Walkable reports whether actors may stand on tiles of this kind.
func (k TileKind) Walkable() bool {
	return k != TileWall && k != TileTownWall
}

// BlocksSight reports whether a ray stops at tiles of this kind.
func (k TileKind) BlocksSight() bool {
	return k == TileWall || k == TileTownWall
}

// IsStairs reports whether the kind is either staircase.
func (k TileKind) IsStairs() bool {
	return k == TileStairsDown || k == TileStairsUp
}

// Tile holds the kind and visibility state for one map cell.
type Tile struct {
	Kind     TileKind
	Explored bool
	Visible  bool
}
