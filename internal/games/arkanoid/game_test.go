package arkanoid

import (
	"strings"
	"testing"

	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same inputs, two runs must produce identical snapshots.
	cfg := testRuntime()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i == 10 {
			inputSequence[i].Set(core.ActionRelease)
		} else if i > 10 && i%5 < 3 {
			inputSequence[i].Set(core.ActionRight)
		} else if i > 10 {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ, run1=%d run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ, run1=%d run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("determinism failed: tick counts differ, run1=%d run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Error("determinism failed: ball positions differ")
	}
	if snap1.PlatformX != snap2.PlatformX {
		t.Error("determinism failed: platform positions differ")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	releaseInput := core.NewInputFrame()
	releaseInput.Set(core.ActionRelease)
	g.Step(releaseInput)

	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}

	g.Reset(testRuntime())

	if g.level.Score() != 0 {
		t.Errorf("Reset should clear score, got %d", g.level.Score())
	}
	if g.state != StatePlaying {
		t.Errorf("Reset should set state to playing, got %s", g.state)
	}
	if g.tick != 0 {
		t.Errorf("Reset should clear tick count, got %d", g.tick)
	}
	if g.level.BallReleased() {
		t.Error("Reset should pin the ball back onto the platform")
	}
}

func TestGameRebuildOnResetAction(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	releaseInput := core.NewInputFrame()
	releaseInput.Set(core.ActionRelease)
	g.Step(releaseInput)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	resetInput := core.NewInputFrame()
	resetInput.Set(core.ActionReset)
	g.Step(resetInput)

	if g.tick != 0 {
		t.Errorf("board reset should clear tick count, got %d", g.tick)
	}
	if g.level.BallReleased() {
		t.Error("board reset should pin the ball")
	}
	if g.level.Score() != 0 {
		t.Errorf("board reset should clear score, got %d", g.level.Score())
	}
	if g.state != StatePlaying {
		t.Errorf("state = %s, expected playing", g.state)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	releaseInput := core.NewInputFrame()
	releaseInput.Set(core.ActionRelease)
	g.Step(releaseInput)

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if g.state != StatePaused {
		t.Errorf("game should be paused, got %s", g.state)
	}

	ball := g.level.Ball()
	ballX, ballY := ball.Rect.X, ball.Rect.Y

	g.Step(core.NewInputFrame())

	if ball.Rect.X != ballX || ball.Rect.Y != ballY {
		t.Error("ball position should not change while paused")
	}

	g.Step(pauseInput)

	if g.state == StatePaused {
		t.Error("game should be unpaused")
	}
}

func TestGameLaunchOnRelease(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	ball := g.level.Ball()
	if ball.Speed != (core.Vec2{}) {
		t.Fatalf("ball should start with zero speed, got %+v", ball.Speed)
	}

	releaseInput := core.NewInputFrame()
	releaseInput.Set(core.ActionRelease)
	g.Step(releaseInput)

	if !g.level.BallReleased() {
		t.Error("ball should be released")
	}
	if ball.Speed.Y >= 0 {
		t.Errorf("ball should launch upward, speed.Y = %v", ball.Speed.Y)
	}
	if ball.Speed.X <= 0 {
		t.Errorf("ball should launch rightward, speed.X = %v", ball.Speed.X)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	if !strings.Contains(str, "Score: 0") {
		t.Error("render should draw the score counter")
	}
	if !strings.Contains(str, "Lives:") {
		t.Error("render should draw the lives counter")
	}
	if !strings.Contains(str, string(BallChar)) {
		t.Error("render should draw the ball")
	}
	if !strings.Contains(str, string(PlatformChar)) {
		t.Error("render should draw the platform")
	}
	if !strings.Contains(str, string(DelimiterChar)) {
		t.Error("render should draw the header delimiter line")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60})

	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("render should report an undersized window")
	}

	// Steps are ignored while the screen is too small.
	releaseInput := core.NewInputFrame()
	releaseInput.Set(core.ActionRelease)
	g.Step(releaseInput)
	if g.level.BallReleased() {
		t.Error("undersized screen should freeze the simulation")
	}
}

func TestGameIdentity(t *testing.T) {
	classic := New()
	if classic.ID() != "arkanoid" || classic.Title() != "Arkanoid" {
		t.Errorf("classic identity = %s / %s", classic.ID(), classic.Title())
	}

	hardcore := NewHardcore()
	if hardcore.ID() != "arkanoid_hardcore" || hardcore.Title() != "Arkanoid (Hardcore)" {
		t.Errorf("hardcore identity = %s / %s", hardcore.ID(), hardcore.Title())
	}
}

func TestHardcoreSingleLife(t *testing.T) {
	g := NewHardcore()
	g.Reset(testRuntime())

	if got := g.State().Lives; got != 1 {
		t.Errorf("hardcore lives = %d, expected 1", got)
	}
}

func TestSnapshotMatchesState(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	releaseInput := core.NewInputFrame()
	releaseInput.Set(core.ActionRelease)
	g.Step(releaseInput)
	for i := 0; i < 20; i++ {
		in := core.NewInputFrame()
		if i%3 == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}

	snap := g.Snapshot()

	if snap.Tick != uint64(g.tick) {
		t.Errorf("snapshot tick = %d, expected %d", snap.Tick, g.tick)
	}
	if snap.Score != g.level.Score() {
		t.Errorf("snapshot score = %d, expected %d", snap.Score, g.level.Score())
	}
	if snap.Lives != g.level.Lives() {
		t.Errorf("snapshot lives = %d, expected %d", snap.Lives, g.level.Lives())
	}
	if snap.BlockCount != len(g.level.Blocks()) {
		t.Errorf("snapshot blocks = %d, expected %d", snap.BlockCount, len(g.level.Blocks()))
	}
	if len(snap.BlockData) != snap.BlockCount*2 {
		t.Errorf("block data length = %d, expected %d", len(snap.BlockData), snap.BlockCount*2)
	}

	// A snapshot taken twice without stepping hashes identically.
	if snap.Hash() != g.Snapshot().Hash() {
		t.Error("snapshot hash should be stable between steps")
	}
}
