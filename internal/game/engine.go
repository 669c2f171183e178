// Package game is the turn engine: it owns one session's world and turns
// player intents into simulation steps.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"crimson-depths/internal/component"
	"crimson-depths/internal/config"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/factory"
	"crimson-depths/internal/gamemap"
	"crimson-depths/internal/logger"
	"crimson-depths/internal/system"
	"crimson-depths/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	ErrGameOver          = errors.New("game over")
	ErrNoAttributePoints = errors.New("no attribute points")
	ErrUnknownAttribute  = errors.New("unknown attribute")
	ErrBadDirection      = errors.New("invalid direction")
	ErrBlocked           = errors.New("blocked")
)

// State is the session's top-level state.
type State uint8

const (
	StatePlaying State = iota
	StateDead
)

func (s State) String() string {
	if s == StateDead {
		return "dead"
	}
	return "playing"
}

// Outcome is what a command did. TurnTaken means the world advanced; Err is
// set when the intent was rejected and no turn passed.
type Outcome struct {
	TurnTaken bool
	GameOver  bool
	Err       error
}

// Engine runs one single-player session. It is not safe for concurrent use.
type Engine struct {
	cfg    config.Config
	seed   int64
	rng    *rand.Rand
	w      *ecs.World
	world  *world.GameWorld
	player ecs.EntityID
	state  State
	msgs   *MessageLog
	run    RunLog
	log    *logrus.Entry

	exploring bool
	// combat is set whenever an attack is narrated; auto-explore stops on it.
	combat bool
}

// New builds a session from cfg. Levels come from seed; combat and AI draw
// from a separate stream seeded the same way.
func New(cfg config.Config, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	w := ecs.NewWorld()
	e := &Engine{
		cfg:   cfg,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		w:     w,
		world: world.New(cfg, seed, w),
		msgs:  NewMessageLog(cfg.MaxMessages),
		log:   logger.For("engine").WithField("seed", seed),
	}
	e.player = factory.NewPlayer(w, e.rng, 0, 0, cfg.InventoryCapacity, cfg.StartingSilver)
	e.world.PlaceAtStart(e.player)
	e.run = RunLog{Seed: seed, DeepestLevel: e.world.CurrentLevel(), LevelReached: 1}
	e.updateFOV()

	e.say("Welcome to the Crimson Depths!", tcell.ColorFuchsia)
	e.log.Debug("session started")
	return e, nil
}

func (e *Engine) say(text string, color tcell.Color) { e.msgs.Add(text, color) }

func (e *Engine) fovRadius() int {
	if e.cfg.Town && e.world.CurrentLevel() == 0 {
		return e.cfg.TownFOVRadius
	}
	return e.cfg.DungeonFOVRadius
}

func (e *Engine) updateFOV() {
	system.UpdateFOV(e.w, e.world.Current(), e.player, e.fovRadius())
}

func (e *Engine) playerPos() component.Position {
	p, _ := system.PositionOf(e.w, e.player)
	return p
}

func (e *Engine) playerDead() bool {
	f := system.FighterOf(e.w, e.player)
	return f == nil || f.Dead()
}

// reject logs why an intent failed. No time passes.
func (e *Engine) reject(err error) Outcome {
	e.say(errorText(err), tcell.ColorGray)
	return Outcome{Err: err}
}

func (e *Engine) over() (Outcome, bool) {
	if e.state == StateDead {
		return Outcome{GameOver: true, Err: ErrGameOver}, true
	}
	return Outcome{}, false
}

// endTurn runs the world after a turn-consuming intent: the monsters act on
// a snapshot of the level, the player picks up what they walked onto and the
// view is refreshed.
func (e *Engine) endTurn(moved bool) Outcome {
	e.run.Turns++
	gmap := e.world.Current()
	e.updateFOV()

	for _, id := range slices.Clone(gmap.Entities) {
		if id == e.player || !e.w.Alive(id) || !gmap.HasEntity(id) || system.AIOf(e.w, id) == nil {
			continue
		}
		e.narrate(system.ProcessAI(e.w, gmap, e.rng, e.player, id))
	}

	if !e.playerDead() && moved {
		picked := system.PickUp(e.w, gmap, e.player)
		e.narrate(picked)
		// Goods taken this turn must be guarded before the next step.
		if slices.ContainsFunc(picked, func(ev system.Event) bool { return ev.Kind == system.EvUnpaid }) {
			e.narrate(system.GuardCheck(e.w, gmap, e.player))
		}
	}
	e.updateFOV()

	if e.playerDead() {
		e.die()
		return Outcome{TurnTaken: true, GameOver: true}
	}
	return Outcome{TurnTaken: true}
}

func (e *Engine) die() {
	e.state = StateDead
	e.exploring = false
	if f := system.FighterOf(e.w, e.player); f != nil {
		e.run.LevelReached = f.Level
	}
	e.say("You died!", tcell.ColorRed)
	e.log.WithFields(logrus.Fields{
		"turns": e.run.Turns,
		"depth": e.run.DeepestLevel,
		"cause": e.run.CauseOfDeath,
	}).Info("player died")
	saveRunLog(e.run)
}

// Queries.

func (e *Engine) Map() *gamemap.GameMap    { return e.world.Current() }
func (e *Engine) World() *ecs.World        { return e.w }
func (e *Engine) Levels() *world.GameWorld { return e.world }
func (e *Engine) Player() ecs.EntityID     { return e.player }
func (e *Engine) Level() int               { return e.world.CurrentLevel() }
func (e *Engine) Messages() []Message      { return e.msgs.All() }
func (e *Engine) State() State             { return e.state }
func (e *Engine) AutoExploring() bool      { return e.exploring }
func (e *Engine) Seed() int64              { return e.seed }
func (e *Engine) RunLog() RunLog           { return e.run }
