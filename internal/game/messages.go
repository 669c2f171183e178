package game

import (
	"errors"
	"fmt"

	"crimson-depths/internal/ecs"
	"crimson-depths/internal/system"
	"crimson-depths/internal/world"

	"github.com/gdamore/tcell/v2"
)

// Message is one line of the message log.
type Message struct {
	Text  string
	Color tcell.Color
}

// MessageLog keeps the most recent messages, dropping the oldest first.
type MessageLog struct {
	max     int
	entries []Message
}

func NewMessageLog(max int) *MessageLog {
	return &MessageLog{max: max}
}

func (l *MessageLog) Add(text string, color tcell.Color) {
	l.entries = append(l.entries, Message{Text: text, Color: color})
	if over := len(l.entries) - l.max; over > 0 {
		l.entries = l.entries[over:]
	}
}

// All returns the log oldest first. The slice must not be modified.
func (l *MessageLog) All() []Message { return l.entries }

func (l *MessageLog) Len() int { return len(l.entries) }

// Last returns the newest message, or a zero Message when empty.
func (l *MessageLog) Last() Message {
	if len(l.entries) == 0 {
		return Message{}
	}
	return l.entries[len(l.entries)-1]
}

var errorTexts = []struct {
	err  error
	text string
}{
	{ErrGameOver, "You are dead."},
	{ErrNoAttributePoints, "You have no attribute points to spend."},
	{ErrUnknownAttribute, "There is no such attribute."},
	{ErrBadDirection, "That is not a direction."},
	{ErrBlocked, "That way is blocked."},
	{system.ErrInventoryFull, "Your pack is full."},
	{system.ErrFeetOccupied, "There is already something at your feet."},
	{system.ErrNotEquippable, "You cannot equip that."},
	{system.ErrWrongSlot, "That does not go there."},
	{system.ErrSlotEmpty, "You are not wearing anything there."},
	{system.ErrNotCarried, "You are not carrying that."},
	{system.ErrCannotUse, "You cannot use that."},
	{system.ErrFullHealth, "You are already at full health."},
	{system.ErrInsufficientFunds, "You cannot afford that."},
	{system.ErrNoUnpaidItems, "You have nothing to pay for."},
	{system.ErrNotInShop, "You are not in a shop."},
	{system.ErrNothingToSell, "There is nothing here to sell."},
	{system.ErrNoRangedWeapon, "You are not wielding a missile weapon."},
	{system.ErrNoAmmo, "You have no ammunition."},
	{system.ErrWrongAmmo, "That ammunition does not fit your weapon."},
	{system.ErrOutOfRange, "That is out of range."},
	{system.ErrNoTarget, "There is nothing to shoot at."},
	{world.ErrNotOnStairs, "There are no stairs here."},
	{world.ErrNoDeeperLevel, "There is nowhere further to descend."},
	{world.ErrNoHigherLevel, "There is nowhere further to climb."},
}

// errorText turns a command failure into a message line.
func errorText(err error) string {
	for _, e := range errorTexts {
		if errors.Is(err, e.err) {
			return e.text
		}
	}
	return err.Error()
}

// narrate turns system events into log messages and updates run statistics.
func (e *Engine) narrate(events []system.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case system.EvAttack:
			e.narrateAttack(ev.Attack)
		case system.EvHealed:
			e.say(fmt.Sprintf("You drink the %s and recover %d HP.", ev.Name, ev.Amount), tcell.ColorGreen)
		case system.EvEquipped:
			e.say(fmt.Sprintf("You equip the %s (%s).", ev.Name, ev.Slot), tcell.ColorWhite)
		case system.EvUnequipped:
			e.say(fmt.Sprintf("You remove the %s.", ev.Name), tcell.ColorWhite)
		case system.EvDropped:
			e.say(fmt.Sprintf("You drop the %s.", ev.Name), tcell.ColorWhite)
		case system.EvPickedUp:
			e.say(fmt.Sprintf("You pick up the %s.", ev.Name), tcell.ColorWhite)
		case system.EvNoRoom:
			e.say(fmt.Sprintf("Your pack is too full to take the %s.", ev.Name), tcell.ColorOrange)
		case system.EvUnpaid:
			e.say(fmt.Sprintf("The %s costs %d silver.", ev.Name, ev.Amount), tcell.ColorYellow)
		case system.EvAmmoMerged:
			e.say(fmt.Sprintf("You add %d to your %s.", ev.Amount, ev.Name), tcell.ColorWhite)
		case system.EvQuiverEmpty:
			e.say(fmt.Sprintf("Your %s is empty.", ev.Name), tcell.ColorOrange)
		case system.EvShopkeeperBlocks:
			e.say(fmt.Sprintf("The %s steps into the doorway. \"Pay before you leave!\"", ev.Name), tcell.ColorYellow)
		case system.EvShopkeeperGreets:
			e.say(fmt.Sprintf("The %s greets you and steps aside.", ev.Name), tcell.ColorAqua)
		case system.EvShopkeeperRefuses:
			e.say(fmt.Sprintf("The %s will not move. \"You owe me %d silver.\"", ev.Name, ev.Amount), tcell.ColorYellow)
		case system.EvShopkeeperChat:
			e.say(fmt.Sprintf("The %s nods at you.", ev.Name), tcell.ColorAqua)
		case system.EvPurchased:
			e.say(fmt.Sprintf("You pay %d silver.", ev.Amount), tcell.ColorYellow)
		case system.EvSold:
			e.say(fmt.Sprintf("You sell the %s for %d silver.", ev.Name, ev.Amount), tcell.ColorYellow)
		}
	}
}

func (e *Engine) narrateAttack(res *system.AttackResult) {
	if res == nil || res.Outcome == system.AttackNone {
		return
	}
	e.combat = true
	verb := "hit"
	if res.Ranged {
		verb = "shoot"
	}

	if res.Attacker == e.player {
		switch res.Outcome {
		case system.AttackMiss:
			if res.Defender == ecs.NilEntity {
				e.say("Your shot hits nothing.", tcell.ColorGray)
			} else {
				e.say(fmt.Sprintf("You miss the %s.", res.DefenderName), tcell.ColorGray)
			}
		case system.AttackHit:
			e.say(fmt.Sprintf("You %s the %s for %d damage.", verb, res.DefenderName, res.Dealt), tcell.ColorWhite)
		case system.AttackKill:
			e.run.Kills++
			e.say(fmt.Sprintf("You kill the %s!", res.DefenderName), tcell.ColorGreen)
			if res.XP > 0 {
				e.say(fmt.Sprintf("You gain %d experience.", res.XP), tcell.ColorGreen)
			}
			if res.LeveledUp {
				e.say(fmt.Sprintf("Welcome to level %d! (+%d HP)", res.NewLevel, res.HPGain), tcell.ColorFuchsia)
			}
		}
		return
	}

	switch res.Outcome {
	case system.AttackMiss:
		e.say(fmt.Sprintf("The %s misses you.", res.AttackerName), tcell.ColorGray)
	case system.AttackHit:
		e.say(fmt.Sprintf("The %s hits you for %d damage.", res.AttackerName, res.Dealt), tcell.ColorRed)
	case system.AttackKill:
		if res.PlayerKilled {
			e.run.CauseOfDeath = res.AttackerName
		}
		e.say(fmt.Sprintf("The %s hits you for %d damage.", res.AttackerName, res.Dealt), tcell.ColorRed)
	}
}
