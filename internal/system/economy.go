package system

import (
	"crimson-depths/assets"
	"crimson-depths/internal/component"
	"crimson-depths/internal/ecs"
	"crimson-depths/internal/gamemap"
)

// UnpaidItems lists carried and equipped items still owed for, each once.
func UnpaidItems(w *ecs.World, inv *component.Inventory) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range inv.All() {
		if it := ItemOf(w, id); it != nil && it.Unpaid {
			out = append(out, id)
		}
	}
	return out
}

func HasUnpaid(w *ecs.World, inv *component.Inventory) bool {
	return len(UnpaidItems(w, inv)) > 0
}

// Debt is the total price of all unpaid items.
func Debt(w *ecs.World, inv *component.Inventory) int {
	total := 0
	for _, id := range UnpaidItems(w, inv) {
		total += ItemOf(w, id).Price
	}
	return total
}

// DefaultPrice is the fallback price for an item of the given kind.
func DefaultPrice(kind component.ItemKind) int {
	return assets.CategoryPrices[kind]
}

// ShopAt returns the building whose shop floor contains (x, y).
func ShopAt(gmap *gamemap.GameMap, x, y int) (gamemap.Building, bool) {
	return gmap.BuildingAt(x, y)
}

// Silver returns the owner's purse.
func Silver(w *ecs.World, owner ecs.EntityID) int {
	if c := w.Get(owner, component.CWallet); c != nil {
		return c.(component.Wallet).Silver
	}
	return 0
}

func setSilver(w *ecs.World, owner ecs.EntityID, silver int) {
	w.Add(owner, component.Wallet{Silver: silver})
}

// PayForUnpaid settles every unpaid item at once or changes nothing.
func PayForUnpaid(w *ecs.World, owner ecs.EntityID) (int, error) {
	inv := InventoryOf(w, owner)
	if inv == nil {
		return 0, ErrNoUnpaidItems
	}
	unpaid := UnpaidItems(w, inv)
	if len(unpaid) == 0 {
		return 0, ErrNoUnpaidItems
	}
	debt := Debt(w, inv)
	silver := Silver(w, owner)
	if silver < debt {
		return 0, ErrInsufficientFunds
	}
	for _, id := range unpaid {
		ItemOf(w, id).Unpaid = false
	}
	setSilver(w, owner, silver-debt)
	return debt, nil
}

// BuyUnpaid pays for everything owed and lets any blocking shopkeeper on the
// level step out of the doorway.
func BuyUnpaid(w *ecs.World, gmap *gamemap.GameMap, owner ecs.EntityID) ([]Event, error) {
	paid, err := PayForUnpaid(w, owner)
	if err != nil {
		return nil, err
	}
	events := []Event{{Kind: EvPurchased, Actor: owner, Amount: paid}}
	for _, id := range gmap.Entities {
		if ai := AIOf(w, id); ai != nil && ai.Kind == component.AIShopkeeper && ai.Guard.State == component.GuardBlocking {
			ForceAside(w, gmap, id)
		}
	}
	return events, nil
}

// SellAtFeet sells the owner's ground item to the shop they stand in for
// half its price. The item becomes unpaid shop stock at full price.
func SellAtFeet(w *ecs.World, gmap *gamemap.GameMap, owner ecs.EntityID) ([]Event, error) {
	pos, ok := PositionOf(w, owner)
	if !ok {
		return nil, ErrNotInShop
	}
	shop, ok := ShopAt(gmap, pos.X, pos.Y)
	if !ok {
		return nil, ErrNotInShop
	}
	var item ecs.EntityID
	for _, id := range ItemsAt(w, gmap, pos.X, pos.Y) {
		if !ItemOf(w, id).Unpaid {
			item = id
			break
		}
	}
	if item == ecs.NilEntity {
		return nil, ErrNothingToSell
	}

	it := ItemOf(w, item)
	if it.Price == 0 {
		it.Price = DefaultPrice(it.Kind)
	}
	gain := max(1, it.Price/2)
	it.Unpaid = true
	setSilver(w, owner, Silver(w, owner)+gain)

	for _, id := range gmap.Entities {
		ai := AIOf(w, id)
		if ai != nil && ai.Kind == component.AIShopkeeper && ai.Guard.Shop == shop.Shop && ai.Guard.State == component.GuardBlocking {
			ForceAside(w, gmap, id)
		}
	}
	return []Event{{Kind: EvSold, Actor: owner, Target: item, Name: NameOf(w, item), Amount: gain}}, nil
}
