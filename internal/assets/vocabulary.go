package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

const vocabularyTemplateName = "vocabulary.md.go.tmpl"

//go:embed templates/vocabulary.md.go.tmpl
var fallbackVocabularyTemplate string

// VocabularyTemplate is the data passed to vocabulary sheet templates
type VocabularyTemplate struct {
	Title       string
	GeneratedAt time.Time
	Cards       []VocabularyCard
	Attempts    int
	Correct     int
	Accuracy    int
}

// VocabularyCard is one entry of the sheet
type VocabularyCard struct {
	Word      string
	Meaning   string
	Example   string
	CreatedAt time.Time
}

// NewVocabularyCards converts entries keeping their order.
func NewVocabularyCards(entries []vocabulary.Entry) []VocabularyCard {
	cards := make([]VocabularyCard, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, VocabularyCard{
			Word:      entry.Word,
			Meaning:   entry.Meaning,
			Example:   entry.Example,
			CreatedAt: entry.CreatedAt,
		})
	}
	return cards
}

// WriteVocabularySheet renders the sheet with the template at templatePath,
// or with the embedded one when the path is empty or unusable.
func WriteVocabularySheet(output io.Writer, templatePath string, templateData VocabularyTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, vocabularyTemplateName, fallbackVocabularyTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
