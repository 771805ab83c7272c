package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordcard/internal/cli"
	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/flashcard"
	"github.com/at-ishikawa/wordcard/internal/quiz"
)

// modeValue is a pflag.Value accepting the quiz mode names.
type modeValue struct {
	mode quiz.Mode
	set  bool
}

var _ pflag.Value = (*modeValue)(nil)

func (v *modeValue) String() string {
	if !v.set {
		return ""
	}
	return v.mode.String()
}

func (v *modeValue) Set(s string) error {
	mode, err := quiz.ParseMode(s)
	if err != nil {
		return err
	}
	v.mode = mode
	v.set = true
	return nil
}

func (v *modeValue) Type() string {
	return "mode"
}

func newQuizCommand() *cobra.Command {
	var mode modeValue
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Quiz yourself on random words from the vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []flashcard.Option
			if mode.set {
				opts = append(opts, flashcard.WithMode(mode.mode))
			}
			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				quizCLI := cli.NewQuizCLI(deck, cmd.InOrStdin(), cmd.OutOrStdout())
				return quizCLI.Start(ctx)
			}, opts...)
		},
	}
	command.Flags().Var(&mode, "mode", "quiz direction: word-to-meaning or meaning-to-word (default from config)")
	return command
}
