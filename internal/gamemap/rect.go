package gamemap

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms and buildings.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rect from a top-left corner and a size; X2 = x+w.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Interior is r shrunk by one tile on every side.
func (r Rect) Interior() Rect {
	return Rect{X1: r.X1 + 1, Y1: r.Y1 + 1, X2: r.X2 - 1, Y2: r.Y2 - 1}
}

// Expand grows r by n tiles on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X1: r.X1 - n, Y1: r.Y1 - n, X2: r.X2 + n, Y2: r.Y2 + n}
}

// ShopType identifies what a town building sells.
type ShopType uint8

const (
	ShopWeaponsmith ShopType = iota
	ShopArmorsmith
	ShopApothecary
)

// ShopTypes lists every shop in placement order.
var ShopTypes = []ShopType{ShopWeaponsmith, ShopArmorsmith, ShopApothecary}

func (s ShopType) String() string {
	switch s {
	case ShopWeaponsmith:
		return "Weaponsmith"
	case ShopArmorsmith:
		return "Armorsmith"
	case ShopApothecary:
		return "Apothecary"
	}
	return "Shop"
}

// Building is a walled town shop with a single door.
type Building struct {
	Rect
	Shop ShopType
	Door Point
	Name string
}

// Bounds is the walkable shop floor inside the walls.
func (b Building) Bounds() Rect {
	return b.Interior()
}
