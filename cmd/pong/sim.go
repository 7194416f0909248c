package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/jtfleetwood/Pong/internal/core"
	"github.com/jtfleetwood/Pong/internal/games/pong"
	"github.com/jtfleetwood/Pong/internal/loop"
)

var (
	flagFrames    int
	flagSimWidth  int
	flagSimHeight int
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a terminal",
	Long: `Run the game headless on a simulated clock and print what happened.

Frames are timed by a manual clock, so every frame lasts exactly 1/fps seconds
regardless of how fast the machine is. With --autopilot the paddle follows the
ball; without it the paddle never moves.

Examples:
  pong sim
  pong sim --frames 36000 --fps 120
  pong sim --autopilot=false --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	def := core.DefaultConfig()
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagSimWidth, "width", def.ScreenW, "World width in pixels")
	simCmd.Flags().IntVar(&flagSimHeight, "height", def.ScreenH, "World height in pixels")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Steer the paddle towards the ball")
}

// simStats tallies events from one simulation run.
type simStats struct {
	counts map[pong.EventKind]int
	rounds []int
}

func (s *simStats) OnEvent(e pong.Event) {
	s.counts[e.Kind]++
	if e.Kind == pong.EventRoundOver {
		s.rounds = append(s.rounds, e.Score)
	}
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagFrames <= 0 || flagSimWidth <= 0 || flagSimHeight <= 0 {
		fail("--frames, --width and --height must be positive")
	}

	logger, closer, err := newLogger("")
	if err != nil {
		fail("cannot open log: %v", err)
	}
	defer closer.Close()

	// An uncapped loop would see zero-length frames on a manual clock
	if cfg.Loop.TargetFPS <= 0 {
		cfg.Loop.TargetFPS = loop.DefaultFPS
	}

	rc := core.RuntimeConfig{ScreenW: flagSimWidth, ScreenH: flagSimHeight, TickRate: cfg.Loop.TargetFPS}
	game := pong.New(rc, cfg)
	stats := &simStats{counts: make(map[pong.EventKind]int)}
	sched := loop.New(game,
		loop.WithClock(loop.NewManualClock(time.Unix(0, 0))),
		loop.WithFrameRate(cfg.Loop.TargetFPS),
		loop.WithLogger(logger),
		loop.WithListener(stats),
	)

	logger.Debug("simulating", "frames", flagFrames, "world", rc, "difficulty", preset)

	for i := 0; i < flagFrames; i++ {
		if flagAutopilot {
			sched.SetPaddleMovement(steer(sched.Snapshot()))
		}
		if err := sched.Step(1); err != nil {
			fail("%v", err)
		}
	}

	printSim(sched.Snapshot(), stats, cfg.Loop.TargetFPS)
}

// steer moves the paddle under the ball. An idle round is started by moving.
func steer(snap pong.Snapshot) pong.Movement {
	dx := snap.Ball.CenterX() - snap.Paddle.CenterX()
	switch {
	case math.Abs(dx) > snap.Paddle.Width()/4:
		if dx < 0 {
			return pong.MovingLeft
		}
		return pong.MovingRight
	case snap.Phase == pong.PhaseIdle:
		return pong.MovingRight
	}
	return pong.Stopped
}

func printSim(snap pong.Snapshot, stats *simStats, fps int) {
	seconds := float64(snap.Tick) / float64(fps)
	fmt.Printf("Simulated %d frames (%.1fs at %d fps) on a %dx%d world\n",
		snap.Tick, seconds, fps, snap.ScreenW, snap.ScreenH)
	fmt.Println()

	kinds := []pong.EventKind{
		pong.EventPaddleHit,
		pong.EventObstacleHit,
		pong.EventTopWall,
		pong.EventSideWall,
		pong.EventMiss,
		pong.EventRoundOver,
	}
	fmt.Printf("  %-14s  %s\n", "Event", "Count")
	fmt.Printf("  %-14s  %s\n", "-----", "-----")
	for _, k := range kinds {
		fmt.Printf("  %-14s  %d\n", k, stats.counts[k])
	}

	fmt.Println()
	fmt.Printf("Rounds finished: %d   Best: %d   Current score: %d   Lives: %d\n",
		len(stats.rounds), snap.Best, snap.Score, snap.Lives)
}
