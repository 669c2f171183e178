package render

import (
	"crimson-depths/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileLook is how one tile kind is drawn. Explored tiles outside the field
// of view use Dim.
type TileLook struct {
	Glyph rune
	Lit   tcell.Color
	Dim   tcell.Color
}

// TileLooks maps each tile kind to its glyph and colors.
var TileLooks = map[gamemap.TileKind]TileLook{
	gamemap.TileWall:       {'#', tcell.ColorSilver, tcell.ColorDimGray},
	gamemap.TileFloor:      {'.', tcell.ColorWhite, tcell.ColorDimGray},
	gamemap.TileCorridor:   {'.', tcell.ColorGray, tcell.ColorDimGray},
	gamemap.TileStairsDown: {'>', tcell.ColorYellow, tcell.ColorOlive},
	gamemap.TileStairsUp:   {'<', tcell.ColorYellow, tcell.ColorOlive},
	gamemap.TileGrass:      {'"', tcell.ColorGreen, tcell.ColorDarkGreen},
	gamemap.TileTownWall:   {'#', tcell.ColorTan, tcell.ColorSaddleBrown},
}

// lookFor returns the glyph and style for a tile.
func lookFor(kind gamemap.TileKind, visible bool) (rune, tcell.Style) {
	look, ok := TileLooks[kind]
	if !ok {
		look = TileLook{'?', tcell.ColorRed, tcell.ColorRed}
	}
	color := look.Dim
	if visible {
		color = look.Lit
	}
	return look.Glyph, tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
}
