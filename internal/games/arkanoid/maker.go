package arkanoid

import (
	"fmt"
	"math"

	"github.com/KolomarenkoDmytrii/arkanoid/internal/config"
	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
)

// blockPalette is the row color banding, cycled by row index.
var blockPalette = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
}

// LevelMaker deterministically constructs the initial board layout from
// configuration. All sizes are derived from the arena dimensions:
//
//	horizontal alignment = 3% of width
//	block width          = (width - margins) / columns
//	block height         = 45% of block width
//	vertical alignment   = 6% of height
//	ball size            = 3% of height
//	platform width       = 9.2% of width
type LevelMaker struct {
	width  float64
	height float64
	rows   int

	platformSpeed float64
	rules         Rules

	hAlign    float64
	vAlign    float64
	blockW    float64
	blockH    float64
	ballSize  float64
	platformW float64
	launchMag float64
}

// NewLevelMaker validates the configuration and precomputes the layout.
// All dimensions and counts must be positive, and the column count must
// leave the computed block width positive.
func NewLevelMaker(cfg config.ArkanoidConfig) (*LevelMaker, error) {
	if cfg.Arena.Width <= 0 || cfg.Arena.Height <= 0 {
		return nil, fmt.Errorf("arkanoid: arena size must be positive, got %dx%d",
			cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Arena.Columns <= 0 {
		return nil, fmt.Errorf("arkanoid: column count must be positive, got %d", cfg.Arena.Columns)
	}
	if cfg.Arena.Rows <= 0 {
		return nil, fmt.Errorf("arkanoid: row count must be positive, got %d", cfg.Arena.Rows)
	}
	if cfg.Gameplay.Lives <= 0 {
		return nil, fmt.Errorf("arkanoid: starting lives must be positive, got %d", cfg.Gameplay.Lives)
	}

	width := float64(cfg.Arena.Width)
	height := float64(cfg.Arena.Height)
	columns := float64(cfg.Arena.Columns)

	// Blocks are placed as: alignment block alignment block ... alignment,
	// so the row consumes columns*blockW + (columns+2)*hAlign of width.
	hAlign := math.Round(width * 0.03)
	blockW := math.Round((width - hAlign*2 - hAlign*columns) / columns)
	if blockW <= 0 {
		return nil, fmt.Errorf("arkanoid: %d columns leave no room for blocks in width %d",
			cfg.Arena.Columns, cfg.Arena.Width)
	}

	return &LevelMaker{
		width:         width,
		height:        height,
		rows:          cfg.Arena.Rows,
		platformSpeed: cfg.Physics.PlatformSpeed,
		rules: Rules{
			Lives:         cfg.Gameplay.Lives,
			BlockPoints:   cfg.Gameplay.BlockPoints,
			SpeedUpFactor: cfg.Physics.SpeedUpFactor,
		},
		hAlign:    hAlign,
		vAlign:    math.Round(height * 0.06),
		blockW:    blockW,
		blockH:    math.Round(blockW * 0.45),
		ballSize:  math.Round(height * 0.03),
		platformW: math.Round(width * 0.092),
		launchMag: math.Round(height * 0.005),
	}, nil
}

// BuildLevel constructs a fresh level: platform at 75% of arena height,
// ball pinned above it, and the block grid banded by row color. Calling
// it again produces an identical, independent level.
func (m *LevelMaker) BuildLevel() *Level {
	platform := &Platform{
		Rect:  core.NewRect(m.width/2, m.height*0.75, m.platformW, m.ballSize),
		Speed: core.Vec2{X: m.platformSpeed},
	}

	// The launch direction is up and to the right. The ball's initial
	// position is irrelevant: level construction pins it to the platform.
	ball := &Ball{
		Rect:  core.NewRect(0, 0, m.ballSize, m.ballSize),
		Speed: core.Vec2{X: m.launchMag, Y: -m.launchMag},
	}

	// The strip above topOffset holds the score and lives counters.
	topOffset := ball.Rect.H * 3
	y := math.Round(ball.Rect.H*2.2 + topOffset)

	var blocks []*Block
	x := m.hAlign
	for row := 0; row < m.rows; row++ {
		// Truncate the row once the next block would cross the right
		// edge; a partial block never appears.
		for x+m.blockW < m.width {
			blocks = append(blocks, &Block{
				Rect:  core.NewRect(x, y, m.blockW, m.blockH),
				Color: blockPalette[row%len(blockPalette)],
			})
			x += m.blockW + m.hAlign
		}
		x = m.hAlign
		y += m.vAlign
	}

	edges := core.NewRect(0, topOffset, m.width, m.height)

	return NewLevel(blocks, platform, ball, edges, m.rules)
}
