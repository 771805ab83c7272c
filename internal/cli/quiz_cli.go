package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/wordcard/internal/flashcard"
	"github.com/at-ishikawa/wordcard/internal/quiz"
)

// NoVocabularyMessage is shown when a quiz is requested on an empty vocabulary.
const NoVocabularyMessage = "No vocabulary to quiz on. Add some words first."

// QuizCLI manages the interactive quiz session for a deck
type QuizCLI struct {
	*InteractiveQuizCLI
	deck *flashcard.Deck
}

// NewQuizCLI creates a quiz CLI reading answers from stdin and writing to stdout
func NewQuizCLI(deck *flashcard.Deck, stdin io.Reader, stdout io.Writer) *QuizCLI {
	return &QuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		deck:               deck,
	}
}

// Start runs the quiz until the user stops it or the input ends.
func (r *QuizCLI) Start(ctx context.Context) error {
	defer r.deck.Stop()
	if err := r.Run(ctx, r); err != nil {
		return err
	}
	r.printSummary()
	return nil
}

// Session asks one question, evaluates the answer, and waits for the user to
// continue or stop.
func (r *QuizCLI) Session(ctx context.Context) error {
	question, err := r.deck.Next()
	if errors.Is(err, quiz.ErrNoVocabulary) {
		_, _ = fmt.Fprintln(r.stdoutWriter, NoVocabularyMessage)
		return errEnd
	}
	if err != nil {
		return fmt.Errorf("deck.Next() > %w", err)
	}

	_, _ = fmt.Fprintf(r.stdoutWriter, "[%s] %s\n", question.Mode.Label(), question.Prompt)
	_, _ = r.bold.Fprint(r.stdoutWriter, "> ")

	answer, err := r.readLine()
	if errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(r.stdoutWriter)
		return errEnd
	}
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	result, ok, err := r.deck.Submit(ctx, answer)
	if err != nil {
		return fmt.Errorf("deck.Submit() > %w", err)
	}
	if !ok {
		return errEnd
	}
	r.printResult(result)

	_, _ = fmt.Fprint(r.stdoutWriter, "Press Enter for the next question, or type stop to finish: ")
	command, err := r.readLine()
	if errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(r.stdoutWriter)
		return errEnd
	}
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if isStopCommand(command) {
		return errEnd
	}
	_, _ = fmt.Fprintln(r.stdoutWriter)
	return nil
}

func (r *QuizCLI) printResult(result quiz.Result) {
	if result.Correct {
		_, _ = fmt.Fprint(r.stdoutWriter, "✅ ")
		_, _ = r.green.Fprintln(r.stdoutWriter, "Correct!")
		return
	}
	_, _ = fmt.Fprint(r.stdoutWriter, "❌ ")
	_, _ = r.red.Fprintf(r.stdoutWriter, "Incorrect. The answer is %q\n", result.Expected)
}

func (r *QuizCLI) printSummary() {
	stats := r.deck.Stats()
	_, _ = fmt.Fprintf(r.stdoutWriter, "Attempts: %d, Correct: %d, Accuracy: %d%%\n",
		stats.Attempts, stats.Correct, stats.Accuracy())
}

func isStopCommand(command string) bool {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "stop", "quit", "q":
		return true
	}
	return false
}
