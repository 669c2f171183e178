package game

import (
	"fmt"

	"crimson-depths/internal/gamemap"
	"crimson-depths/internal/system"

	"github.com/gdamore/tcell/v2"
)

// exploreCandidates bounds how many frontier tiles a step tries to path to.
const exploreCandidates = 20

// ToggleAutoExplore turns auto-explore on or off. Toggling takes no time;
// the host then calls AutoExploreStep until it stops.
func (e *Engine) ToggleAutoExplore() Outcome {
	if out, over := e.over(); over {
		return out
	}
	if e.exploring {
		e.stopExplore("You stop exploring.")
		return Outcome{}
	}
	e.exploring = true
	e.say("You begin exploring.", tcell.ColorWhite)
	return Outcome{}
}

func (e *Engine) stopExplore(why string) {
	e.exploring = false
	e.say(why, tcell.ColorWhite)
}

// AutoExploreStep takes one step toward the nearest reachable unexplored
// tile. It stops when a monster comes into view, when nothing is left to
// explore and after any fighting.
func (e *Engine) AutoExploreStep() Outcome {
	if out, over := e.over(); over {
		return out
	}
	if !e.exploring {
		return Outcome{}
	}
	gmap := e.world.Current()
	pos := e.playerPos()
	if id, ok := system.NearestVisibleHostile(e.w, gmap, pos); ok {
		e.stopExplore(fmt.Sprintf("You spot a %s.", system.NameOf(e.w, id)))
		return Outcome{}
	}

	from := gamemap.Point{X: pos.X, Y: pos.Y}
	frontier := system.FrontierByDistance(e.w, gmap, from, exploreCandidates)
	if len(frontier) == 0 {
		e.stopExplore("Nothing left to explore.")
		return Outcome{}
	}
	var path []gamemap.Point
	for _, goal := range frontier {
		if path = system.FindPath(e.w, gmap, from, goal); len(path) > 0 {
			break
		}
	}
	if len(path) == 0 {
		e.stopExplore("No path to unexplored areas.")
		return Outcome{}
	}

	e.combat = false
	out := e.Move(path[0].X-from.X, path[0].Y-from.Y)
	switch {
	case out.GameOver:
	case out.Err != nil:
		e.stopExplore("You stop exploring.")
	case e.combat:
		e.stopExplore("You are under attack!")
	}
	return out
}
