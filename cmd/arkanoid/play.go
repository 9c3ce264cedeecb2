package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KolomarenkoDmytrii/arkanoid/internal/core"
	"github.com/KolomarenkoDmytrii/arkanoid/internal/games/arkanoid"
	"github.com/KolomarenkoDmytrii/arkanoid/internal/platform/tui"
	"github.com/KolomarenkoDmytrii/arkanoid/internal/registry"
	"github.com/KolomarenkoDmytrii/arkanoid/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing the specified mode (default: arkanoid).

Controls:
  A/D, Left/Right - Move platform
  Space           - Serve the ball
  P               - Pause
  R               - Restart (after game over)
  Delete          - Rebuild the board mid-game
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - 5 lives, gentle speed-up
  normal - 4 lives (default)
  hard   - 2 lives, faster speed-up

Examples:
  arkanoid play
  arkanoid play arkanoid_hardcore
  arkanoid play --difficulty hard
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "arkanoid"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if the mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arkanoid list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the difficulty selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply config path and difficulty before creation
	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(flagDifficulty)

	// Show the difficulty selector for the classic mode when no
	// preset was given on the command line. Hardcore is always one life.
	if gameID == "arkanoid" && flagDifficulty == "" {
		selection, updatedCfg, selErr := tui.RunDifficultySelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		arkanoid.SetDifficultyPreset(string(selection.Preset))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
