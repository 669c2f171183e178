package render

import (
	"fmt"

	"crimson-depths/internal/component"
	"crimson-depths/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(src Source) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, screenW, StatusLine(src.Stats(), src.Level()), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if src.AutoExploring() {
		tag := "[exploring]"
		r.drawText(screenW-runewidth.StringWidth(tag), hudY, screenW, tag, tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}

	// Message log (last 3 messages).
	msgs := src.Messages()
	start := max(0, len(msgs)-3)
	for i, msg := range msgs[start:] {
		r.drawText(0, hudY+2+i, screenW, msg.Text, tcell.StyleDefault.Foreground(msg.Color))
	}
}

// StatusLine formats the player's stats for the HUD.
func StatusLine(s game.PlayerStats, level int) string {
	depth := "Town"
	if level > 0 {
		depth = fmt.Sprintf("Depth %d", level)
	}
	next := "max"
	if s.NextXP > 0 {
		next = fmt.Sprint(s.NextXP)
	}
	line := fmt.Sprintf("HP %d/%d  Lv %d  XP %d/%s  AC %d  DG %d%%  Dmg %s  $%d  %s",
		s.HP, s.MaxHP, s.Level, s.XP, next, s.Armor, s.Dodge, s.Damage, s.Silver, depth)
	if s.Debt > 0 {
		line += fmt.Sprintf("  owe %d", s.Debt)
	}
	line += fmt.Sprintf("  S%d I%d W%d D%d C%d Ch%d", s.Attr.Str, s.Attr.Int, s.Attr.Wis, s.Attr.Dex, s.Attr.Con, s.Attr.Cha)
	if s.AttributePoints > 0 {
		line += fmt.Sprintf(" (+%d)", s.AttributePoints)
	}
	return line
}

// DrawInventory overlays the pack listing. Each item is labelled with the
// letter the input layer maps to its index.
func (r *Renderer) DrawInventory(src Source, title string) {
	screenW, screenH := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := 0; y < screenH-hudRows; y++ {
		for x := 0; x < screenW; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	r.drawText(1, 0, screenW-2, title, style.Bold(true))

	items := src.Inventory()
	if len(items) == 0 {
		r.drawText(1, 2, screenW-2, "You are carrying nothing.", style)
		return
	}
	nameW := 0
	for _, it := range items {
		nameW = max(nameW, runewidth.StringWidth(it.Name))
	}
	for i, it := range items {
		if i+2 >= screenH-hudRows {
			break
		}
		r.drawText(1, i+2, screenW-2, InventoryLine(it, nameW), style.Foreground(itemColor(it)))
	}
}

// InventoryLine formats one item, padding the name to nameW columns.
func InventoryLine(it game.ItemView, nameW int) string {
	label := rune('a' + it.Index)
	line := fmt.Sprintf("%c) %c %s", label, it.Glyph, runewidth.FillRight(it.Name, nameW))
	if it.Capacity > 0 {
		line += fmt.Sprintf("  %d/%d", it.Charge, it.Capacity)
	}
	if it.Equipped {
		line += fmt.Sprintf("  [%s]", it.Slot)
	}
	if it.Unpaid {
		line += fmt.Sprintf("  (unpaid, %d silver)", it.Price)
	}
	return line
}

func itemColor(it game.ItemView) tcell.Color {
	switch {
	case it.Unpaid:
		return tcell.ColorYellow
	case it.Equipped:
		return tcell.ColorAqua
	case it.Kind == component.ItemConsumable:
		return tcell.ColorGreen
	}
	return tcell.ColorWhite
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
