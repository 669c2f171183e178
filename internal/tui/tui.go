// Package tui runs an engine interactively on a tcell screen.
package tui

import (
	"time"

	"crimson-depths/internal/component"
	"crimson-depths/internal/game"
	"crimson-depths/internal/render"
	"crimson-depths/internal/system"

	"github.com/gdamore/tcell/v2"
)

// exploreDelay paces auto-explore so the player can watch and interrupt it.
const exploreDelay = 40 * time.Millisecond

type mode uint8

const (
	modeNormal mode = iota
	modePickItem
	modeTarget
	modeAttribute
)

// UI holds the input state of one interactive session.
type UI struct {
	e    *game.Engine
	r    *render.Renderer
	mode mode
	// pick runs the chosen inventory command in modePickItem.
	pick  func(game.ItemView) game.Outcome
	title string
	// tx, ty is the aiming cursor in modeTarget.
	tx, ty int
}

func NewUI(screen tcell.Screen, e *game.Engine) *UI {
	return &UI{e: e, r: render.NewRenderer(screen)}
}

// Run drives e from screen events until the player quits or the screen
// closes. The caller owns the screen and finalizes it.
func Run(screen tcell.Screen, e *game.Engine) {
	ui := NewUI(screen, e)
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pump(screen, events, done)

	for {
		ui.Draw()
		if e.AutoExploring() {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				// Any key interrupts exploring.
				if _, isKey := ev.(*tcell.EventKey); isKey {
					e.ToggleAutoExplore()
				} else if !ui.Handle(ev) {
					return
				}
			case <-time.After(exploreDelay):
				e.AutoExploreStep()
			}
			continue
		}
		ev, ok := <-events
		if !ok || !ui.Handle(ev) {
			return
		}
	}
}

// pump forwards screen events until the screen closes or done is closed.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Draw renders the current mode.
func (ui *UI) Draw() {
	ui.r.DrawFrame(ui.e)
	switch ui.mode {
	case modePickItem:
		ui.r.DrawInventory(ui.e, ui.title)
	case modeTarget:
		ui.r.DrawCursor(ui.tx, ui.ty)
	}
	ui.r.Show()
}

// Handle processes one event and reports whether the session continues.
func (ui *UI) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		ui.r.Resize()
		return true
	case *tcell.EventKey:
		switch ui.mode {
		case modePickItem:
			ui.handlePick(ev)
		case modeTarget:
			ui.handleTarget(ev)
		case modeAttribute:
			ui.mode = modeNormal
			if attr, ok := attributeKeys[ev.Rune()]; ok {
				ui.e.SpendAttributePoint(attr)
			}
		default:
			return ui.handleNormal(ev)
		}
	}
	return true
}

func (ui *UI) handleNormal(ev *tcell.EventKey) bool {
	e := ui.e
	action := keyToAction(ev)
	if action == ActionQuit {
		return false
	}
	if e.State() == game.StateDead {
		return true
	}

	switch action {
	case ActionWait:
		e.Wait()
	case ActionUse:
		ui.pickItem("Use which item?", func(it game.ItemView) game.Outcome { return e.UseItem(it.Index) })
	case ActionEquip:
		ui.pickItem("Equip which item?", func(it game.ItemView) game.Outcome { return e.Equip(it.Index) })
	case ActionUnequip:
		ui.pickItem("Remove which item?", func(it game.ItemView) game.Outcome {
			if !it.Equipped {
				return e.Unequip(component.NumSlots)
			}
			return e.Unequip(it.Slot)
		})
	case ActionDrop:
		ui.pickItem("Drop which item?", func(it game.ItemView) game.Outcome { return e.Drop(it.Index) })
	case ActionQuickFire:
		e.QuickFire()
	case ActionTarget:
		ui.startTarget()
	case ActionExplore:
		e.ToggleAutoExplore()
	case ActionBuy:
		e.BuyUnpaid()
	case ActionSell:
		e.SellAtFeet()
	case ActionAttribute:
		ui.mode = modeAttribute
	case ActionDescend:
		e.Descend()
	case ActionAscend:
		e.Ascend()
	default:
		if dx, dy := actionToDelta(action); dx != 0 || dy != 0 {
			e.Move(dx, dy)
		}
	}
	return true
}

func (ui *UI) pickItem(title string, run func(game.ItemView) game.Outcome) {
	ui.mode, ui.title, ui.pick = modePickItem, title+" (a-z, Esc to cancel)", run
}

func (ui *UI) handlePick(ev *tcell.EventKey) {
	ui.mode = modeNormal
	if ev.Key() == tcell.KeyEscape {
		return
	}
	idx := int(ev.Rune() - 'a')
	items := ui.e.Inventory()
	if idx < 0 || idx >= len(items) {
		return
	}
	ui.pick(items[idx])
}

// startTarget puts the cursor on the nearest visible monster, or on the
// player when none is in view.
func (ui *UI) startTarget() {
	w := ui.e.World()
	p, _ := system.PositionOf(w, ui.e.Player())
	ui.tx, ui.ty = p.X, p.Y
	if id, ok := system.NearestVisibleHostile(w, ui.e.Map(), p); ok {
		tp, _ := system.PositionOf(w, id)
		ui.tx, ui.ty = tp.X, tp.Y
	}
	ui.mode = modeTarget
}

func (ui *UI) handleTarget(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape:
		ui.mode = modeNormal
	case ev.Key() == tcell.KeyEnter || ev.Rune() == 'f' || ev.Rune() == 'F':
		ui.mode = modeNormal
		ui.e.FireAt(ui.tx, ui.ty)
	default:
		dx, dy := actionToDelta(keyToAction(ev))
		gmap := ui.e.Map()
		if gmap.InBounds(ui.tx+dx, ui.ty+dy) {
			ui.tx, ui.ty = ui.tx+dx, ui.ty+dy
		}
	}
}
