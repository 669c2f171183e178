package system

import (
	"cmp"
	"math"
	"math/rand"
	"slices"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

// ProcessAI runs one turn for the AI-controlled entity id and returns what
// happened. Entities without a controller do nothing.
func ProcessAI(w *ecs.World, gmap *gamemap.GameMap, r *rand.Rand, player, id ecs.EntityID) []Event {
	ai := AIOf(w, id)
	if ai == nil {
		return nil
	}
	switch ai.Kind {
	case component.AIShopkeeper:
		return guardTurn(w, gmap, player, id, ai.Guard)
	default:
		return hostileTurn(w, gmap, r, player, id)
	}
}

// hostileTurn attacks an adjacent player or takes one step toward them.
// Monsters outside the player's view do not act.
func hostileTurn(w *ecs.World, gmap *gamemap.GameMap, r *rand.Rand, player, id ecs.EntityID) []Event {
	pos, ok := PositionOf(w, id)
	if !ok || !gmap.IsVisible(pos.X, pos.Y) {
		return nil
	}
	target, ok := PositionOf(w, player)
	if !ok {
		return nil
	}
	if pf := FighterOf(w, player); pf == nil || pf.Dead() {
		return nil
	}

	dist := Chebyshev(pos, target)
	if dist == 0 {
		return nil
	}
	if dist == 1 {
		res := ResolveAttack(w, r, id, player, false)
		return []Event{{Kind: EvAttack, Actor: id, Target: player, Attack: &res}}
	}

	dx := int(math.RoundToEven(float64(target.X-pos.X) / float64(dist)))
	dy := int(math.RoundToEven(float64(target.Y-pos.Y) / float64(dist)))
	nx, ny := pos.X+dx, pos.Y+dy
	if !gmap.IsWalkable(nx, ny) || gmap.Kind(nx, ny).IsStairs() {
		return nil
	}
	if BlockingAt(w, gmap, nx, ny, id) != ecs.NilEntity {
		return nil
	}
	w.Add(id, component.Position{X: nx, Y: ny})
	return nil
}

// guardTurn plants the shopkeeper in the doorway once the player is inside
// carrying unpaid goods. It never steps back on its own.
func guardTurn(w *ecs.World, gmap *gamemap.GameMap, player, id ecs.EntityID, g *component.ShopGuard) []Event {
	if g == nil || g.State == component.GuardBlocking {
		return nil
	}
	pp, ok := PositionOf(w, player)
	inv := InventoryOf(w, player)
	if !ok || inv == nil || !g.Bounds.Contains(pp.X, pp.Y) || !HasUnpaid(w, inv) {
		return nil
	}
	if BlockingAt(w, gmap, g.Door.X, g.Door.Y, id) != ecs.NilEntity {
		return nil
	}
	w.Add(id, component.Position{X: g.Door.X, Y: g.Door.Y})
	g.State = component.GuardBlocking
	return []Event{{Kind: EvShopkeeperBlocks, Actor: id, Target: player, Name: NameOf(w, id)}}
}

// GuardCheck runs the door check for the keeper of the shop the player
// stands in, outside the regular AI sweep.
func GuardCheck(w *ecs.World, gmap *gamemap.GameMap, player ecs.EntityID) []Event {
	pp, ok := PositionOf(w, player)
	if !ok {
		return nil
	}
	var events []Event
	for _, id := range gmap.Entities {
		ai := AIOf(w, id)
		if ai == nil || ai.Kind != component.AIShopkeeper || ai.Guard == nil {
			continue
		}
		if ai.Guard.Bounds.Contains(pp.X, pp.Y) {
			events = append(events, guardTurn(w, gmap, player, id, ai.Guard)...)
		}
	}
	return events
}

// ForceAside moves a shopkeeper off its doorway to the free tile beside the
// door that lies deepest toward the shop's center, or to the center itself.
func ForceAside(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID) {
	ai := AIOf(w, id)
	if ai == nil || ai.Guard == nil {
		return
	}
	g := ai.Guard
	cx, cy := g.Bounds.Center()
	center := gamemap.Point{X: cx, Y: cy}

	free := func(p gamemap.Point) bool {
		return g.Bounds.Contains(p.X, p.Y) && gmap.IsWalkable(p.X, p.Y) &&
			BlockingAt(w, gmap, p.X, p.Y, id) == ecs.NilEntity
	}

	var cands []gamemap.Point
	if !g.Bounds.Contains(g.Door.X, g.Door.Y) {
		cands = append(cands, gamemap.Point{
			X: clamp(g.Door.X+sign(cx-g.Door.X), g.Bounds.X1, g.Bounds.X2),
			Y: clamp(g.Door.Y+sign(cy-g.Door.Y), g.Bounds.Y1, g.Bounds.Y2),
		})
	}
	var around []gamemap.Point
	for _, d := range directions {
		around = append(around, gamemap.Point{X: g.Door.X + d[0], Y: g.Door.Y + d[1]})
	}
	slices.SortStableFunc(around, func(a, b gamemap.Point) int {
		return cmp.Compare(manhattan(a, center), manhattan(b, center))
	})
	cands = append(cands, around...)
	cands = append(cands, center)

	g.State = component.GuardAside
	for _, p := range cands {
		if free(p) {
			w.Add(id, component.Position{X: p.X, Y: p.Y})
			return
		}
	}
}

// Greet handles the player bumping into a shopkeeper. Shopkeepers are never
// attacked this way.
func Greet(w *ecs.World, gmap *gamemap.GameMap, player, keeper ecs.EntityID) []Event {
	ai := AIOf(w, keeper)
	if ai == nil || ai.Guard == nil {
		return nil
	}
	name := NameOf(w, keeper)
	if inv := InventoryOf(w, player); inv != nil && HasUnpaid(w, inv) {
		return []Event{{Kind: EvShopkeeperRefuses, Actor: keeper, Target: player, Name: name, Amount: Debt(w, inv)}}
	}
	if ai.Guard.State == component.GuardBlocking {
		ForceAside(w, gmap, keeper)
		return []Event{{Kind: EvShopkeeperGreets, Actor: keeper, Target: player, Name: name}}
	}
	return []Event{{Kind: EvShopkeeperChat, Actor: keeper, Target: player, Name: name}}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
