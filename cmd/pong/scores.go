package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jtfleetwood/Pong/internal/platform/tui"
	"github.com/jtfleetwood/Pong/internal/storage"
)

var (
	flagPlain  bool
	flagMine   bool
	flagLimit  int
	flagClear  bool
	flagForced bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished rounds.

In a terminal this opens a scrollable table; with --plain, or when stdout is
not a terminal, the top entries are printed instead.

Examples:
  pong scores
  pong scores --plain --limit 5
  pong scores --mine --plain
  pong scores --clear --yes`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the viewer")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "Only show rounds played by the current user")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries printed with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded round")
	scoresCmd.Flags().BoolVar(&flagForced, "yes", false, "Confirm --clear")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if !flagForced {
			store.Close()
			fail("--clear deletes every score; pass --yes to confirm")
		}
		if err := store.ClearScores(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("All scores cleared.")
		return
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil {
		if err := tui.RunScoreboard(store, playerName(), width, height); err != nil {
			store.Close()
			fail("running scoreboard: %v", err)
		}
		return
	}

	if err := printScores(store); err != nil {
		store.Close()
		fail("%v", err)
	}
}

// printScores writes the top entries and the overall stats to stdout.
func printScores(store *storage.Store) error {
	player := ""
	if flagMine {
		player = playerName()
	}

	scores, err := store.TopScores(player, flagLimit)
	if err != nil {
		return err
	}

	if player != "" {
		fmt.Printf("High Scores - %s\n", player)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-14s  %-6s  %-10s  %s\n", "----", "------", "-----", "----------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-6d  %-10s  %s\n", i+1, entry.Player, entry.Score, entry.Difficulty, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Rounds: %d   Average: %.1f\n", stats.HighScore, stats.Rounds, stats.AvgScore)
	return nil
}
