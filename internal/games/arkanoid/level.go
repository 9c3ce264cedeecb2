package arkanoid

import (
	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
)

// Rules holds the scoring and lives parameters a level is created with.
type Rules struct {
	Lives         int
	BlockPoints   int
	SpeedUpFactor float64
}

// Level owns the ball, platform, live block set, arena boundary, and game
// state, and advances the world by exactly one discrete step per Update
// call. It is not safe for concurrent use; the caller drives it from a
// single goroutine, one call per frame.
type Level struct {
	blocks   []*Block
	platform *Platform
	ball     *Ball

	// edges is the playable boundary. Its top is offset from zero to
	// reserve a header strip for score and lives display.
	edges core.Rect

	// releasedSpeed is the ball's launch velocity, captured once at
	// construction and immutable for the level's lifetime.
	releasedSpeed core.Vec2

	score     int
	lives     int
	released  bool
	gameOver  bool
	playerWon bool

	blockPoints   int
	speedUpFactor float64
}

// NewLevel wraps pre-built entities into a level. The ball's speed at
// construction time becomes the launch velocity; the ball itself starts
// pinned to the platform with zero speed.
func NewLevel(blocks []*Block, platform *Platform, ball *Ball, edges core.Rect, rules Rules) *Level {
	l := &Level{
		blocks:        blocks,
		platform:      platform,
		ball:          ball,
		edges:         edges,
		releasedSpeed: ball.Speed,
		lives:         rules.Lives,
		blockPoints:   rules.BlockPoints,
		speedUpFactor: rules.SpeedUpFactor,
	}
	l.resetBall()
	return l
}

// Score returns the current score.
func (l *Level) Score() int { return l.score }

// Lives returns the remaining lives.
func (l *Level) Lives() int { return l.lives }

// BallReleased reports whether the ball is in flight.
func (l *Level) BallReleased() bool { return l.released }

// GameOver reports whether the player has run out of lives.
func (l *Level) GameOver() bool { return l.gameOver }

// PlayerWon reports whether every block has been destroyed.
func (l *Level) PlayerWon() bool { return l.playerWon }

// TopEdge returns the y-coordinate where the playable area starts. The
// strip above it belongs to the header display.
func (l *Level) TopEdge() float64 { return l.edges.Top() }

// Edges returns the arena boundary rectangle.
func (l *Level) Edges() core.Rect { return l.edges }

// Ball returns the level's ball.
func (l *Level) Ball() *Ball { return l.ball }

// Platform returns the level's platform.
func (l *Level) Platform() *Platform { return l.platform }

// Blocks returns the live block set.
func (l *Level) Blocks() []*Block { return l.blocks }

// ReleaseBall launches the ball with the captured launch velocity.
// Idempotent: releasing an already-released ball has no effect.
func (l *Level) ReleaseBall() {
	if !l.released {
		l.released = true
		l.ball.Speed = l.releasedSpeed
	}
}

// resetBall pins the ball back onto the platform with zero speed.
func (l *Level) resetBall() {
	l.ball.Rect.SetBottom(l.platform.Rect.Top())
	l.ball.Rect.SetCenterX(l.platform.Rect.CenterX())
	l.ball.Speed = core.Vec2{}
	l.released = false
}

// Update advances the simulation by one step: input, collisions,
// destroyed-block bookkeeping, termination check. Once the level reaches
// a terminal state the call becomes a no-op.
func (l *Level) Update(in core.InputFrame) {
	if l.gameOver || l.playerWon {
		return
	}

	l.processInput(in)
	l.processCollisions()
	l.removeDestroyed()

	if l.lives < 1 {
		l.gameOver = true
	} else if len(l.blocks) == 0 {
		l.playerWon = true
	}
}

// processInput applies the frame's held actions. Left is applied before
// Right, so Right wins the velocity sign when both are held.
func (l *Level) processInput(in core.InputFrame) {
	if in.Has(core.ActionRelease) {
		l.ReleaseBall()
	}
	if in.Has(core.ActionLeft) {
		l.platform.Speed.X = -core.AbsF(l.platform.Speed.X)
		l.movePlatform()
	}
	if in.Has(core.ActionRight) {
		l.platform.Speed.X = core.AbsF(l.platform.Speed.X)
		l.movePlatform()
	}
}

// movePlatform moves the platform and drags the pinned ball along with it.
func (l *Level) movePlatform() {
	l.platform.Move()
	if !l.released {
		l.ball.Rect.SetBottom(l.platform.Rect.Top())
		l.ball.Rect.SetCenterX(l.platform.Rect.CenterX())
	}
}

// processCollisions moves the ball one axis at a time, X before Y, so a
// single-frame diagonal move registers as either an X hit or a Y hit
// depending on which post-move rectangle overlaps first.
func (l *Level) processCollisions() {
	ball := l.ball
	platform := l.platform

	// X axis
	ball.Rect.X += ball.Speed.X
	switch {
	case ball.Rect.Intersects(platform.Rect):
		ResolveXAxis(&ball.Rect, &ball.Speed, platform.Rect)
	case ball.Rect.Right() > l.edges.Right():
		ball.Rect.SetRight(l.edges.Right())
		ball.Speed.X = -ball.Speed.X
	case ball.Rect.Left() < l.edges.Left():
		ball.Rect.SetLeft(l.edges.Left())
		ball.Speed.X = -ball.Speed.X
	default:
		for _, block := range l.blocks {
			if ball.Rect.Intersects(block.Rect) {
				ResolveXAxis(&ball.Rect, &ball.Speed, block.Rect)
				block.Destroyed = true
				break
			}
		}
	}

	// Y axis
	ball.Rect.Y += ball.Speed.Y
	switch {
	case ball.Rect.Intersects(platform.Rect):
		ResolveYAxis(&ball.Rect, &ball.Speed)
	case ball.Rect.Bottom() > l.edges.Bottom():
		// Ball fell past the platform: pin it back and burn a life.
		l.resetBall()
		l.lives--
	case ball.Rect.Top() < l.edges.Top():
		ball.Rect.SetTop(l.edges.Top())
		ball.Speed.Y = -ball.Speed.Y
	default:
		for _, block := range l.blocks {
			if ball.Rect.Intersects(block.Rect) {
				ResolveYAxis(&ball.Rect, &ball.Speed)
				block.Destroyed = true
				break
			}
		}
	}

	// If the platform squeezes the ball against a side wall, force the
	// ball below the platform to break the wedge.
	squeezingOnY := ball.Rect.Bottom() < platform.Rect.Top() ||
		ball.Rect.Top() < platform.Rect.Bottom()
	squeezingOnX := ball.Rect.Right() > l.edges.Right() ||
		ball.Rect.Left() < l.edges.Left()
	if squeezingOnY && squeezingOnX {
		ball.Rect.SetTop(platform.Rect.Bottom())
	}

	// Keep the platform inside the arena, inverting its travel direction
	// the same way the ball bounces off walls.
	if platform.Rect.Right() > l.edges.Right() {
		platform.Rect.SetRight(l.edges.Right())
		platform.Speed.X = -platform.Speed.X
	} else if platform.Rect.Left() < l.edges.Left() {
		platform.Rect.SetLeft(l.edges.Left())
		platform.Speed.X = -platform.Speed.X
	}
}

// removeDestroyed compacts the live block set, scoring each removal and
// compounding the ball speed-up once per removed block.
func (l *Level) removeDestroyed() {
	kept := l.blocks[:0]
	for _, block := range l.blocks {
		if block.Destroyed {
			l.score += l.blockPoints
			l.ball.Speed = l.ball.Speed.Scale(l.speedUpFactor)
			continue
		}
		kept = append(kept, block)
	}
	l.blocks = kept
}
