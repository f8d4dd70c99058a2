package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/storage"
)

var (
	flagRoundsLimit int
	flagRoundsGame  string
)

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "Show recent round history",
	Long: `Display the most recent finished rounds, newest first, with how each
one ended and how fast the flashes had become.

Examples:
  arcade rounds
  arcade rounds --limit 50
  arcade rounds --game whack`,
	Args: cobra.NoArgs,
	RunE: runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&flagRoundsLimit, "limit", 20, "Number of rounds to show")
	roundsCmd.Flags().StringVar(&flagRoundsGame, "game", "", "Only show rounds of this game")
}

func runRounds(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rounds, err := store.RecentRounds(flagRoundsGame, flagRoundsLimit)
	if err != nil {
		return err
	}

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-5s  %-4s  %-7s  %-8s  %-13s  %s\n",
		"Date", "Score", "Taps", "Ended", "Length", "Flash/Revert", "Round")
	fmt.Printf("  %-16s  %-5s  %-4s  %-7s  %-8s  %-13s  %s\n",
		"----", "-----", "----", "-----", "------", "------------", "-----")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %-5d  %-4d  %-7s  %-8s  %-13s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Score,
			r.Taps,
			r.EndReason,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			fmt.Sprintf("%v/%v", r.FinalFlash, r.FinalRevert),
			shortID(r.RoundID),
		)
	}
	return nil
}

// shortID trims a UUID to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
