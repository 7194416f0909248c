package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jtfleetwood/Pong/internal/platform/tui"
	"github.com/jtfleetwood/Pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space/S    - Stop paddle
  Mouse      - Hold on the left or right half to move, release to stop
  P/Esc      - Pause or resume
  N          - New game
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower speedup, longer paddle, one obstacle
  normal - The configured values
  hard   - Faster speedup, shorter paddle, two lives

Examples:
  pong play
  pong play --difficulty easy
  pong play --config ./my-pong.yaml --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fail("%v", err)
	}
}

func play() error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("~/.pong/pong.log")
	if err != nil {
		return fmt.Errorf("cannot open log: %w", err)
	}
	defer closer.Close()

	// Get terminal size; the world is fixed for the whole session
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.SessionOptions{
		Pong:       cfg,
		World:      tui.WorldSize(width, height, cfg.Terminal),
		Player:     playerName(),
		Difficulty: string(preset),
		Debug:      flagDebug,
		Logger:     logger,
	}
	if flagSound {
		opts.Bell = os.Stderr
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
		opts.Scores = store
		if best, hsErr := store.HighScore(""); hsErr == nil {
			opts.HighScore = best
		}
	}

	logger.Info("starting game", "world", opts.World, "difficulty", preset, "player", opts.Player)

	session := tui.NewSession(opts)
	if err := tui.Run(session, width, height); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName returns the local user name recorded with scores.
func playerName() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}
	return "player"
}
