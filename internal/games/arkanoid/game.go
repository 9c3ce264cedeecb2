package arkanoid

import (
	"fmt"

	"github.com/KolomarenkoDmytrii/arkanoid/internal/config"
	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
	"github.com/KolomarenkoDmytrii/arkanoid/internal/registry"
)

// Visual characters for rendering
const (
	PlatformChar  = '='
	BallChar      = '●'
	BlockChar     = '█'
	DelimiterChar = '─'
)

// Game state constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateWin      = "win"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic  GameMode = iota // Default lives from config
	ModeHardcore                 // Single life, faster ramp
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	if config.ValidPreset(preset) {
		difficultyPreset = config.DifficultyPreset(preset)
	} else {
		difficultyPreset = ""
	}
}

// Game adapts the level simulation to the platform-facing game interface:
// it owns the pause/restart overlay state, rebuilds levels, and scales the
// world down to terminal cells for rendering.
type Game struct {
	mode GameMode

	maker *LevelMaker
	level *Level

	state string
	tick  int

	runtime core.RuntimeConfig
	cfg     config.ArkanoidConfig

	// World-to-screen scale factors, recomputed on Reset.
	scaleX float64
	scaleY float64

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new arkanoid game instance (classic mode).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewHardcore creates a new arkanoid game instance with a single life.
func NewHardcore() *Game {
	return &Game{mode: ModeHardcore}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeHardcore {
		return "arkanoid_hardcore"
	}
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeHardcore {
		return "Arkanoid (Hardcore)"
	}
	return "Arkanoid"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeHardcore {
		config.ApplyPreset(&cfg, config.DifficultyHardcore)
	}
	g.cfg = cfg

	maker, err := NewLevelMaker(cfg)
	if err != nil {
		// Loaded config is degenerate; the embedded defaults always build.
		cfg = config.DefaultConfig()
		if g.mode == ModeHardcore {
			config.ApplyPreset(&cfg, config.DifficultyHardcore)
		}
		g.cfg = cfg
		maker, _ = NewLevelMaker(cfg)
	}
	g.maker = maker
	g.level = maker.BuildLevel()

	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.scaleX = float64(runtime.ScreenW) / float64(cfg.Arena.Width)
	g.scaleY = float64(runtime.ScreenH) / float64(cfg.Arena.Height)

	g.tick = 0
	g.state = StatePlaying
}

// rebuildLevel swaps in a fresh board without reloading configuration.
func (g *Game) rebuildLevel() {
	g.level = g.maker.BuildLevel()
	g.tick = 0
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart after a terminal state
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle mid-game board reset
	if in.Has(core.ActionReset) {
		g.rebuildLevel()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.level.Update(in)

	if g.level.GameOver() {
		g.state = StateGameOver
	} else if g.level.PlayerWon() {
		g.state = StateWin
	}

	return core.StepResult{State: g.State()}
}

// cellX converts a world x-coordinate to a screen column.
func (g *Game) cellX(x float64) int {
	return int(x * g.scaleX)
}

// cellY converts a world y-coordinate to a screen row.
func (g *Game) cellY(y float64) int {
	return int(y * g.scaleY)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBlocks(dst)
	g.renderPlatform(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score and lives counters above the delimiter line
// that separates the header strip from the playable area.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.level.Score())
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.level.Lives())
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText)

	delimiterY := g.cellY(g.level.TopEdge())
	if delimiterY < 1 {
		delimiterY = 1
	}
	dst.DrawHLine(0, delimiterY, dst.Width(), DelimiterChar)
}

// renderBlocks draws the live block set with its row color banding.
func (g *Game) renderBlocks(dst *core.Screen) {
	for _, block := range g.level.Blocks() {
		x := g.cellX(block.Rect.X)
		y := g.cellY(block.Rect.Y)
		w := core.Max(1, g.cellX(block.Rect.Right())-x)
		h := core.Max(1, g.cellY(block.Rect.Bottom())-y)
		dst.FillRect(x, y, w, h, BlockChar, block.Color)
	}
}

// renderPlatform draws the player's platform.
func (g *Game) renderPlatform(dst *core.Screen) {
	rect := g.level.Platform().Rect
	x := g.cellX(rect.X)
	y := g.cellY(rect.Y)
	w := core.Max(1, g.cellX(rect.Right())-x)
	for i := 0; i < w; i++ {
		dst.SetCell(x+i, y, PlatformChar, core.ColorCyan)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	rect := g.level.Ball().Rect
	dst.SetCell(g.cellX(rect.CenterX()), g.cellY(rect.CenterY()), BallChar, core.ColorWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if !g.level.BallReleased() {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.level.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.level.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)

	dst.Set(boxX, boxY, '┌')
	dst.Set(boxX+boxW-1, boxY, '┐')
	dst.Set(boxX, boxY+boxH-1, '└')
	dst.Set(boxX+boxW-1, boxY+boxH-1, '┘')
	for x := boxX + 1; x < boxX+boxW-1; x++ {
		dst.Set(x, boxY, '─')
		dst.Set(x, boxY+boxH-1, '─')
	}
	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.Set(boxX, y, '│')
		dst.Set(boxX+boxW-1, y, '│')
	}

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.level == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.level.Score(),
		Lives:    g.level.Lives(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("arkanoid_hardcore", func() registry.Game {
		return NewHardcore()
	})
}
