package system

import (
	"testing"

	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

func setupMoveWorld() (*ecs.World, *gamemap.GameMap, ecs.EntityID) {
	w := ecs.NewWorld()
	gmap := gamemap.New(10, 10)
	// Carve a small open area.
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	player := w.CreateEntity()
	w.Add(player, component.Position{X: 3, Y: 3})
	w.Add(player, component.TagBlocking{})
	gmap.AddEntity(player)
	return w, gmap, player
}

func TestTryMoveSucceeds(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	result, _ := TryMove(w, gmap, player, 1, 0)
	if result != MoveOK {
		t.Fatalf("expected MoveOK, got %v", result)
	}
	pos := w.Get(player, component.CPosition).(component.Position)
	if pos.X != 4 || pos.Y != 3 {
		t.Fatalf("expected position (4,3), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestTryMoveBlockedByWall(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	// Move up into wall row (y=0).
	w.Add(player, component.Position{X: 3, Y: 1})
	result, _ := TryMove(w, gmap, player, 0, -1)
	if result != MoveBlocked {
		t.Fatalf("expected MoveBlocked, got %v", result)
	}
	pos := w.Get(player, component.CPosition).(component.Position)
	if pos.Y != 1 {
		t.Fatalf("position should be unchanged, got (%d,%d)", pos.X, pos.Y)
	}
}

func TestTryMoveIntoEntityReturnsAttack(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	enemy := w.CreateEntity()
	w.Add(enemy, component.Position{X: 4, Y: 3})
	w.Add(enemy, component.TagBlocking{})
	w.Add(enemy, component.NewHostileAI())
	gmap.AddEntity(enemy)

	result, target := TryMove(w, gmap, player, 1, 0)
	if result != MoveAttack {
		t.Fatalf("expected MoveAttack, got %v", result)
	}
	if target != enemy {
		t.Fatalf("expected target=%v, got %v", enemy, target)
	}
	pos := w.Get(player, component.CPosition).(component.Position)
	if pos.X != 3 {
		t.Fatalf("player should not have moved, got (%d,%d)", pos.X, pos.Y)
	}
}

func TestTryMoveIntoShopkeeperInteracts(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	keeper := w.CreateEntity()
	w.Add(keeper, component.Position{X: 3, Y: 4})
	w.Add(keeper, component.TagBlocking{})
	w.Add(keeper, component.NewShopkeeperAI(gamemap.Building{Rect: gamemap.NewRect(2, 2, 5, 5)}))
	gmap.AddEntity(keeper)

	result, target := TryMove(w, gmap, player, 0, 1)
	if result != MoveInteract || target != keeper {
		t.Fatalf("expected MoveInteract with keeper, got %v %v", result, target)
	}
}

func TestTryMoveIgnoresEntitiesOnOtherLevels(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	ghost := w.CreateEntity()
	w.Add(ghost, component.Position{X: 4, Y: 3})
	w.Add(ghost, component.TagBlocking{})

	if result, _ := TryMove(w, gmap, player, 1, 0); result != MoveOK {
		t.Fatalf("entity not on this level should not block, got %v", result)
	}
}

func TestItemsAtAndBlockingAt(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	a := addItem(w, gmap, "dagger", 3, 3)
	b := addItem(w, gmap, "arrows", 3, 3)
	addItem(w, gmap, "mace", 5, 5)

	got := ItemsAt(w, gmap, 3, 3)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("ItemsAt(3,3) = %v, want [%v %v]", got, a, b)
	}
	if BlockingAt(w, gmap, 3, 3, ecs.NilEntity) != player {
		t.Error("BlockingAt should find the player")
	}
	if BlockingAt(w, gmap, 3, 3, player) != ecs.NilEntity {
		t.Error("BlockingAt should skip the given entity")
	}
}
