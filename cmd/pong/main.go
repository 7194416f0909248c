// pong is a single-player Pong with moving obstacles, played in the terminal.
//
// Usage:
//
//	pong play                - Play in this terminal
//	pong serve               - Start SSH server for remote play
//	pong scores              - Show the high score table
//	pong sim                 - Run the simulation headless and print event counts
//	pong config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Load configuration from a YAML file
//	--difficulty <name>  - Apply a preset: easy, normal, hard
//	--db <path>          - Set database path (default: ~/.pong/scores.db)
//	--fps <rate>         - Override the frame cap (0 = use config)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/logging"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
	flagFPS        int
	flagSound      bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong with obstacles, in your terminal",
	Long: `Keep the ball in play with your paddle. Every return scores a point;
every miss costs a life. Two obstacles patrol the field and deflect the ball.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run the simulation without a terminal
  config   - Print the effective configuration

Examples:
  pong play
  pong play --difficulty hard --sound
  pong serve --ssh :2222
  pong scores --plain
  pong sim --frames 3600`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagDBPath, "db", "~/.pong/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default depends on the command)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.IntVar(&flagFPS, "fps", 0, "Frame cap (0 = use config)")
	pf.BoolVar(&flagSound, "sound", false, "Ring the terminal bell on hits and misses")
	pf.BoolVar(&flagDebug, "debug", false, "Show the measured frame rate")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from --config, --difficulty and --fps.
func loadConfig() (config.PongConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PongConfig{}, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if preset == "" {
		preset = config.DifficultyNormal
	}

	if flagFPS > 0 {
		cfg.Loop.TargetFPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.PongConfig{}, "", err
	}
	return cfg, preset, nil
}

// newLogger builds the command logger. Interactive commands pass a default file
// because the terminal belongs to the UI; others pass "" and log to stderr.
func newLogger(defaultFile string) (*log.Logger, io.Closer, error) {
	opts := logging.DefaultOptions()
	opts.Level = flagLogLevel
	opts.File = defaultFile
	if flagLogFile != "" {
		opts.File = flagLogFile
	}
	if flagDebug && flagLogLevel == "info" {
		opts.Level = "debug"
	}
	return logging.New(opts)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
