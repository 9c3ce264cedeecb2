package arkanoid

import "math"

// Snapshot contains the complete simulation state for determinism testing
// and replay. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	State string

	Score    int
	Lives    int
	Released bool

	BallX, BallY   float64
	BallVX, BallVY float64

	PlatformX  float64
	PlatformVX float64

	// Live block positions, two values per block (x, y).
	BlockCount int
	BlockData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blocks := g.level.Blocks()
	blockData := make([]float64, 0, len(blocks)*2)
	for _, block := range blocks {
		blockData = append(blockData, block.Rect.X, block.Rect.Y)
	}

	ball := g.level.Ball()
	platform := g.level.Platform()

	return Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Score:      g.level.Score(),
		Lives:      g.level.Lives(),
		Released:   g.level.BallReleased(),
		BallX:      ball.Rect.X,
		BallY:      ball.Rect.Y,
		BallVX:     ball.Speed.X,
		BallVY:     ball.Speed.Y,
		PlatformX:  platform.Rect.X,
		PlatformVX: platform.Speed.X,
		BlockCount: len(blocks),
		BlockData:  blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	if snap.Released {
		h = h*31 + 1
	} else {
		h *= 31
	}

	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.PlatformX)
	h = h*31 + math.Float64bits(snap.PlatformVX)

	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation
	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
