package arkanoid

import (
	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
)

// ResolveXAxis corrects a movable rectangle that has just moved along X
// and now overlaps other. If the movable's right edge sits strictly inside
// other, it struck other's left side and is snapped flush against it;
// otherwise it struck the right side. The horizontal speed is inverted.
//
// The side decision only inspects one boundary condition, not a full
// swept test. It is an approximation that holds while per-step
// displacement stays small relative to entity size.
func ResolveXAxis(rect *core.Rect, speed *core.Vec2, other core.Rect) {
	if rect.Right() > other.Left() && rect.Right() < other.Right() {
		rect.SetRight(other.Left())
	} else {
		rect.SetLeft(other.Right())
	}
	speed.X = -speed.X
}

// ResolveYAxis corrects a movable rectangle that has just moved along Y
// and now overlaps an obstacle: the vertical displacement is reverted and
// the vertical speed inverted. No side detection is performed; every Y
// contact is treated as a revert-and-bounce.
func ResolveYAxis(rect *core.Rect, speed *core.Vec2) {
	rect.Y -= speed.Y
	speed.Y = -speed.Y
}
