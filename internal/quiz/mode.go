// Package quiz implements the flashcard quiz session: question selection,
// answer checking, and running accuracy statistics.
package quiz

import (
	"fmt"
	"strings"
)

// Mode selects which side of an entry is shown as the prompt.
type Mode int

const (
	// WordToMeaning shows the word and expects its meaning.
	WordToMeaning Mode = iota
	// MeaningToWord shows the meaning and expects the word.
	MeaningToWord
)

var modeNames = map[Mode]string{
	WordToMeaning: "word-to-meaning",
	MeaningToWord: "meaning-to-word",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Label is the human readable form shown next to the prompt.
func (m Mode) Label() string {
	switch m {
	case WordToMeaning:
		return "Word → Meaning"
	case MeaningToWord:
		return "Meaning → Word"
	}
	return m.String()
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, modeName := range modeNames {
		if name == modeName {
			return mode, nil
		}
	}
	return WordToMeaning, fmt.Errorf("unknown quiz mode %q: must be one of word-to-meaning, meaning-to-word", s)
}
