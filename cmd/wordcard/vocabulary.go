package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/cli"
	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/flashcard"
	"github.com/at-ishikawa/wordcard/internal/storage"
)

func newAddCommand() *cobra.Command {
	var example string
	command := &cobra.Command{
		Use:   "add WORD MEANING",
		Short: "Add a word and its meaning to the vocabulary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				entry, ok, err := deck.Add(ctx, args[0], args[1], example)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", entry.Word, entry.ID)
				return nil
			})
		},
	}
	command.Flags().StringVar(&example, "example", "", "example sentence using the word")
	return command
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an entry from the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				removed, err := deck.Remove(ctx, args[0])
				if err != nil {
					return err
				}
				if removed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				}
				return nil
			})
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the vocabulary, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				return cli.PrintVocabulary(cmd.OutOrStdout(), deck.Entries())
			})
		},
	}
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add the entries of a YAML vocabulary export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := storage.ReadVocabularyFile(args[0])
			if err != nil {
				return err
			}
			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				added, err := deck.Import(ctx, entries)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d entries\n", len(added), len(entries))
				return nil
			})
		},
	}
}
