// Package arkanoid implements the arkanoid level simulation: a ball
// bouncing between a player-controlled platform, the arena walls, and a
// grid of destructible blocks. The package contains pure logic with no
// external dependencies beyond core.
package arkanoid

import (
	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
)

// Ball is the free-moving entity. Both velocity components are applied
// on every move.
type Ball struct {
	Rect  core.Rect
	Speed core.Vec2
}

// Move applies the ball's velocity to its position.
func (b *Ball) Move() {
	b.Rect.X += b.Speed.X
	b.Rect.Y += b.Speed.Y
}

// Platform is the player-controlled paddle. Only horizontal displacement
// is ever applied; the vertical speed component is permanently ignored
// even when nonzero.
type Platform struct {
	Rect  core.Rect
	Speed core.Vec2
}

// Move applies the platform's horizontal velocity to its position.
func (p *Platform) Move() {
	p.Rect.X += p.Speed.X
}

// Block is a destructible grid cell. Destroyed is set at most once, when
// the ball strikes the block; the level removes destroyed blocks from the
// live set at the end of the step that struck them.
type Block struct {
	Rect      core.Rect
	Color     core.Color
	Destroyed bool
}
