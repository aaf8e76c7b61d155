// Package vision implements line-of-sight and ambush detection over an
// abstract tile grid. The dungeon itself stays external: callers supply a
// predicate reporting which tiles block sight.
package vision

import "math"

// BlockedFunc reports whether the tile at (x, y) blocks line of sight.
// It must be pure for the duration of a single combat resolution.
type BlockedFunc func(x, y int) bool

// Tile is a grid coordinate.
type Tile struct {
	X, Y int
}

// Distance returns the straight-line (Euclidean) distance between two tiles.
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}

// Visible reports whether (x2, y2) can be seen from (x1, y1).
// It walks a Bresenham line from source toward target and fails on the first
// tile along the way that blocked reports as opaque. The target tile itself
// is never tested, so a combatant standing in a doorway is still visible.
//
// Precondition: blocked must be non-nil.
// Postcondition: Returns true iff no tile strictly before the target blocks.
func Visible(x1, y1, x2, y2 int, blocked BlockedFunc) bool {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	cx, cy := x1, y1
	for {
		if cx == x2 && cy == y2 {
			return true
		}
		if blocked(cx, cy) {
			return false
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			cx += sx
		}
		if e2 < dx {
			err += dx
			cy += sy
		}
	}
}

// FieldOfView returns every tile within the circular range of (x, y) that has
// clear line of sight from it. The origin tile is always included.
//
// Precondition: blocked must be non-nil; rng >= 0.
// Postcondition: Every returned tile t satisfies Distance(x, y, t.X, t.Y) <= rng
// and Visible(x, y, t.X, t.Y, blocked).
func FieldOfView(x, y, rng int, blocked BlockedFunc) map[Tile]struct{} {
	visible := make(map[Tile]struct{})
	visible[Tile{x, y}] = struct{}{}

	rangeSq := rng * rng
	for dx := -rng; dx <= rng; dx++ {
		for dy := -rng; dy <= rng; dy++ {
			if dx*dx+dy*dy > rangeSq {
				continue
			}
			tx, ty := x+dx, y+dy
			if Visible(x, y, tx, ty, blocked) {
				visible[Tile{tx, ty}] = struct{}{}
			}
		}
	}
	return visible
}

// CanAmbush reports whether an attacker at (ax, ay) may ambush a defender at
// (dx, dy): the defender must be within fovRange and the straight line
// between them must be blocked. No line of sight means the defender has not
// noticed the attacker closing in around a corner, so the surprise bonus
// applies. This inversion of ordinary visibility is intentional.
//
// Precondition: blocked must be non-nil; fovRange >= 0.
// Postcondition: Returns true iff Distance <= fovRange and !Visible.
func CanAmbush(ax, ay, dx, dy int, blocked BlockedFunc, fovRange int) bool {
	if Distance(ax, ay, dx, dy) > float64(fovRange) {
		return false
	}
	return !Visible(ax, ay, dx, dy, blocked)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
