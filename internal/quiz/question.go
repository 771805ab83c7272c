package quiz

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

// Question is derived from a single entry and never persisted.
type Question struct {
	SourceEntryID  string
	Prompt         string
	Cue            string
	ExpectedAnswer string
	Mode           Mode
}

// Picker is the random source used to choose the next entry.
// *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

// NewQuestion builds the question for entry in the given mode.
func NewQuestion(entry vocabulary.Entry, mode Mode) Question {
	q := Question{
		SourceEntryID: entry.ID,
		Mode:          mode,
	}
	switch mode {
	case MeaningToWord:
		q.Cue = entry.Meaning
		q.ExpectedAnswer = entry.Word
		q.Prompt = fmt.Sprintf("Which word means %q?", entry.Meaning)
	default:
		q.Cue = entry.Word
		q.ExpectedAnswer = entry.Meaning
		q.Prompt = fmt.Sprintf("What does %q mean?", entry.Word)
	}
	return q
}

// PickQuestion draws one entry uniformly at random. The same entry may be
// drawn twice in a row.
func PickQuestion(entries []vocabulary.Entry, mode Mode, picker Picker) (Question, error) {
	if len(entries) == 0 {
		return Question{}, ErrNoVocabulary
	}
	i := picker.IntN(len(entries))
	return NewQuestion(entries[i], mode), nil
}

// Normalize trims surrounding whitespace and case-folds s for comparison.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// IsCorrect reports whether answer matches the expected answer of q.
func (q Question) IsCorrect(answer string) bool {
	return Normalize(answer) == Normalize(q.ExpectedAnswer)
}
