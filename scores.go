package main

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-board/internal"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the stored scores",
	Long: `Reads the scores from the configured storage and prints them.

Examples:
  tictactoe scores
  tictactoe scores reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset both players' scores to zero",
	Args:  cobra.NoArgs,
	RunE:  runScoresReset,
}

func init() {
	scoresCmd.AddCommand(scoresResetCmd)
}

func runScores(cmd *cobra.Command, _ []string) error {
	conf := initConfig()
	logger := initLogger(conf)
	ctx := cmd.Context()

	kvStorage, err := app.OpenStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}
	defer kvStorage.Close()

	scores := app.NewScoreLedger(logger, conf, kvStorage).Load(ctx)
	printScores(cmd, scores)

	return nil
}

func runScoresReset(cmd *cobra.Command, _ []string) error {
	conf := initConfig()
	logger := initLogger(conf)
	ctx := cmd.Context()

	kvStorage, err := app.OpenStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}
	defer kvStorage.Close()

	scores, err := app.NewScoreLedger(logger, conf, kvStorage).ResetAll(ctx)
	if err != nil {
		return fmt.Errorf("could not reset scores: %w", err)
	}

	printScores(cmd, scores)

	return nil
}

func printScores(cmd *cobra.Command, scores entity.Scores) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s: %d\n", entity.Player1, scores.Player1)
	fmt.Fprintf(out, "%s: %d\n", entity.Player2, scores.Player2)
}
