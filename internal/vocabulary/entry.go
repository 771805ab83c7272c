// Package vocabulary provides the ordered list of registered words.
package vocabulary

import "time"

// Entry is one registered word with its meaning and an optional example.
// Entries are never edited once created.
type Entry struct {
	ID        string    `yaml:"id"`
	Word      string    `yaml:"word"`
	Meaning   string    `yaml:"meaning"`
	Example   string    `yaml:"example,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
}

// HasExample reports whether the entry carries an example sentence.
func (e Entry) HasExample() bool {
	return e.Example != ""
}
