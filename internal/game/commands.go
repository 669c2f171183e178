package game

import (
	"fmt"

	"crimson-depths/internal/component"
	"crimson-depths/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Move steps the player by (dx, dy). Bumping a monster attacks it; bumping
// a shopkeeper talks to them.
func (e *Engine) Move(dx, dy int) Outcome {
	if out, over := e.over(); over {
		return out
	}
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return e.reject(ErrBadDirection)
	}
	gmap := e.world.Current()
	res, target := system.TryMove(e.w, gmap, e.player, dx, dy)
	switch res {
	case system.MoveBlocked:
		return e.reject(ErrBlocked)
	case system.MoveAttack:
		r := system.ResolveAttack(e.w, e.rng, e.player, target, false)
		e.narrate([]system.Event{{Kind: system.EvAttack, Actor: e.player, Target: target, Attack: &r}})
		return e.endTurn(false)
	case system.MoveInteract:
		e.narrate(system.Greet(e.w, gmap, e.player, target))
		return e.endTurn(false)
	}
	return e.endTurn(true)
}

func (e *Engine) Wait() Outcome {
	if out, over := e.over(); over {
		return out
	}
	return e.endTurn(false)
}

// UseItem applies the item at index in the Inventory view.
func (e *Engine) UseItem(index int) Outcome {
	if out, over := e.over(); over {
		return out
	}
	events, err := system.UseItem(e.w, e.world.Current(), e.player, index)
	if err != nil {
		return e.reject(err)
	}
	e.narrate(events)
	return e.endTurn(false)
}

// Equip wears the item at index in its natural slot.
func (e *Engine) Equip(index int) Outcome {
	if out, over := e.over(); over {
		return out
	}
	id, err := system.ItemIndex(system.InventoryOf(e.w, e.player), index)
	if err != nil {
		return e.reject(err)
	}
	it := system.ItemOf(e.w, id)
	if it == nil {
		return e.reject(system.ErrNotEquippable)
	}
	slot, ok := it.Slot()
	if !ok {
		return e.reject(system.ErrNotEquippable)
	}
	events, err := system.Equip(e.w, e.world.Current(), e.player, id, slot)
	if err != nil {
		return e.reject(err)
	}
	e.narrate(events)
	return e.endTurn(false)
}

func (e *Engine) Unequip(slot component.Slot) Outcome {
	if out, over := e.over(); over {
		return out
	}
	events, err := system.Unequip(e.w, e.world.Current(), e.player, slot)
	if err != nil {
		return e.reject(err)
	}
	e.narrate(events)
	return e.endTurn(false)
}

func (e *Engine) Drop(index int) Outcome {
	if out, over := e.over(); over {
		return out
	}
	events, err := system.Drop(e.w, e.world.Current(), e.player, index)
	if err != nil {
		return e.reject(err)
	}
	e.narrate(events)
	return e.endTurn(false)
}

// FireAt shoots the wielded missile weapon at (x, y).
func (e *Engine) FireAt(x, y int) Outcome {
	if out, over := e.over(); over {
		return out
	}
	events, err := system.Fire(e.w, e.world.Current(), e.rng, e.player, x, y)
	if err != nil {
		return e.reject(err)
	}
	e.narrate(events)
	return e.endTurn(false)
}

// QuickFire shoots at the nearest visible monster.
func (e *Engine) QuickFire() Outcome {
	if out, over := e.over(); over {
		return out
	}
	target, ok := system.NearestVisibleHostile(e.w, e.world.Current(), e.playerPos())
	if !ok {
		return e.reject(system.ErrNoTarget)
	}
	p, _ := system.PositionOf(e.w, target)
	return e.FireAt(p.X, p.Y)
}

func (e *Engine) Descend() Outcome {
	if out, over := e.over(); over {
		return out
	}
	if _, err := e.world.Descend(e.player); err != nil {
		return e.reject(err)
	}
	e.arrive()
	e.say(fmt.Sprintf("You descend to level %d.", e.Level()), tcell.ColorWhite)
	return Outcome{TurnTaken: true}
}

func (e *Engine) Ascend() Outcome {
	if out, over := e.over(); over {
		return out
	}
	if _, err := e.world.Ascend(e.player); err != nil {
		return e.reject(err)
	}
	e.arrive()
	if e.cfg.Town && e.Level() == 0 {
		e.say("You climb back up to the town.", tcell.ColorWhite)
	} else {
		e.say(fmt.Sprintf("You climb up to level %d.", e.Level()), tcell.ColorWhite)
	}
	return Outcome{TurnTaken: true}
}

// arrive finishes a level transition. Monsters on the new level get no
// move until the player acts.
func (e *Engine) arrive() {
	e.run.Turns++
	e.run.DeepestLevel = max(e.run.DeepestLevel, e.Level())
	e.exploring = false
	e.updateFOV()
}

// BuyUnpaid pays for everything the player owes. Trading takes no time.
func (e *Engine) BuyUnpaid() Outcome {
	if out, over := e.over(); over {
		return out
	}
	events, err := system.BuyUnpaid(e.w, e.world.Current(), e.player)
	if err != nil {
		return e.reject(err)
	}
	e.narrate(events)
	return Outcome{}
}

// SellAtFeet sells the item on the player's tile to the shop they stand in.
func (e *Engine) SellAtFeet() Outcome {
	if out, over := e.over(); over {
		return out
	}
	events, err := system.SellAtFeet(e.w, e.world.Current(), e.player)
	if err != nil {
		return e.reject(err)
	}
	e.narrate(events)
	return Outcome{}
}

// SpendAttributePoint raises one of str, int, wis, dex, con or cha by one.
func (e *Engine) SpendAttributePoint(attr string) Outcome {
	if out, over := e.over(); over {
		return out
	}
	f := system.FighterOf(e.w, e.player)
	if f.AttributePoints <= 0 {
		return e.reject(ErrNoAttributePoints)
	}
	ref := f.Attr.Ref(attr)
	if ref == nil {
		return e.reject(ErrUnknownAttribute)
	}
	*ref++
	f.AttributePoints--
	f.RecomputeDodge()
	e.say(fmt.Sprintf("Your %s rises to %d.", attr, *ref), tcell.ColorFuchsia)
	return Outcome{}
}
