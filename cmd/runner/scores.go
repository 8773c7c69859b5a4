package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/float-runner/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the best runs",
	Long: `Display the top runs and statistics for one difficulty, or for every
preset when no difficulty is given.

Examples:
  runner scores
  runner scores hard
  runner scores easy --limit 20
  runner scores medium --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs and best score for the difficulty")
}

func runScores(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	difficulties := cfg.PresetNames()
	if len(args) == 1 {
		if _, err := cfg.Profile(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'runner presets' to see available difficulties.")
			os.Exit(1)
		}
		difficulties = []string{args[0]}
	}

	if flagClear && len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(difficulties[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", difficulties[0])
		return
	}

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, d); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, difficulty string) error {
	runs, err := store.TopRuns(difficulty, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", difficulty)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetStats(difficulty)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.BestScore, stats.RunsCount, stats.AvgScore)
	return nil
}
