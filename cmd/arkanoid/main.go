// arkanoid is a terminal block-breaking game played locally or over SSH.
//
// Usage:
//
//	arkanoid list              - List available game modes
//	arkanoid play [mode]       - Play a game (default: classic)
//	arkanoid menu              - Start menu to pick a mode interactively
//	arkanoid serve             - Start SSH server for remote play
//	arkanoid scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arkanoid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/KolomarenkoDmytrii/arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - Break blocks in your terminal",
	Long: `Arkanoid is a terminal block-breaking game. Bounce the ball off
your platform, clear every block, and keep your lives.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arkanoid play
  arkanoid play arkanoid_hardcore
  arkanoid menu
  arkanoid serve --ssh :2222
  arkanoid scores arkanoid`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
