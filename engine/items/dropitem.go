// Package items holds drop items (free-floating items on the world
// surface) and the chunk-bucketed spatial index used for belt collision
// and hit-testing.
package items

import "github.com/brackfield/beltworks/engine/core"

// Size is the physical footprint of a drop item in pixels, used for
// overlap tests (spec.md DROP_ITEM_SIZE).
const Size = 8.0

// DropItem is a single item lying on the world surface at a floating
// pixel position.
type DropItem struct {
	X, Y float64
	Kind core.ItemKind
}

// Overlaps reports whether two drop items at the given positions are
// within the hit-test box: |dx| < Size and |dy| < Size.
func Overlaps(ax, ay, bx, by float64) bool {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return dx < Size && dy < Size
}
