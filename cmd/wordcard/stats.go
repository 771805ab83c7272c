package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/flashcard"
)

func newStatsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show the quiz statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				stats := deck.Stats()
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Words: %d\nAttempts: %d\nCorrect: %d\nAccuracy: %d%%\n",
					len(deck.Entries()), stats.Attempts, stats.Correct, stats.Accuracy())
				return nil
			})
		},
	}
	command.AddCommand(newStatsResetCommand())
	return command
}

func newStatsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset attempts and correct answers to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				if err := deck.ResetStats(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Statistics reset")
				return nil
			})
		},
	}
}
