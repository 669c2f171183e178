package tui

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionUse
	ActionEquip
	ActionUnequip
	ActionDrop
	ActionQuickFire
	ActionTarget
	ActionExplore
	ActionBuy
	ActionSell
	ActionAttribute
	ActionDescend
	ActionAscend
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k':
		return ActionMoveN
	case 'j':
		return ActionMoveS
	case 'l':
		return ActionMoveE
	case 'h':
		return ActionMoveW
	case 'y':
		return ActionMoveNW
	case 'u':
		return ActionMoveNE
	case 'b':
		return ActionMoveSW
	case 'n':
		return ActionMoveSE
	case '.':
		return ActionWait
	case 'i':
		return ActionUse
	case 'e':
		return ActionEquip
	case 'r':
		return ActionUnequip
	case 'd':
		return ActionDrop
	case 'f':
		return ActionQuickFire
	case 'F':
		return ActionTarget
	case 'x':
		return ActionExplore
	case '$':
		return ActionBuy
	case 's':
		return ActionSell
	case 'A':
		return ActionAttribute
	case '>':
		return ActionDescend
	case '<':
		return ActionAscend
	case 'q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}

// attributeKeys maps the attribute prompt's keys to attribute names.
var attributeKeys = map[rune]string{
	's': "str", 'i': "int", 'w': "wis", 'd': "dex", 'c': "con", 'h': "cha",
}
