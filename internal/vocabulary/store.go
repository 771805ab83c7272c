package vocabulary

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store keeps entries in reverse insertion order, newest first.
type Store struct {
	entries []Entry
	newID   func() string
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID generator used for new entries.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithClock replaces the clock used to stamp new entries.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		s.now = fn
	}
}

// NewStore creates a store holding the given entries as-is.
func NewStore(entries []Entry, opts ...Option) *Store {
	s := &Store{
		entries: slices.Clone(entries),
		newID:   uuid.NewString,
		now:     now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// now stamps entries at the millisecond precision they are persisted with.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Add trims the inputs and prepends a new entry.
// A blank word or meaning is rejected silently and ok is false.
func (s *Store) Add(word, meaning, example string) (entry Entry, ok bool) {
	word = strings.TrimSpace(word)
	meaning = strings.TrimSpace(meaning)
	if word == "" || meaning == "" {
		return Entry{}, false
	}

	entry = Entry{
		ID:        s.newID(),
		Word:      word,
		Meaning:   meaning,
		Example:   strings.TrimSpace(example),
		CreatedAt: s.now(),
	}
	s.entries = slices.Insert(s.entries, 0, entry)
	return entry, true
}

// Restore prepends an entry that was created elsewhere, such as an import file.
// It keeps the entry's ID and timestamp when present, and rejects blank entries
// and IDs that already exist.
func (s *Store) Restore(entry Entry) (Entry, bool) {
	entry.Word = strings.TrimSpace(entry.Word)
	entry.Meaning = strings.TrimSpace(entry.Meaning)
	entry.Example = strings.TrimSpace(entry.Example)
	if entry.Word == "" || entry.Meaning == "" {
		return Entry{}, false
	}
	if entry.ID == "" {
		entry.ID = s.newID()
	} else if s.Contains(entry.ID) {
		return Entry{}, false
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.entries = slices.Insert(s.entries, 0, entry)
	return entry, true
}

// Remove deletes the entry with the given id and reports whether one existed.
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

// Find returns the entry with the given id.
func (s *Store) Find(id string) (Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Contains reports whether an entry with the given id exists.
func (s *Store) Contains(id string) bool {
	return s.index(id) >= 0
}

// Entries returns a copy of all entries, newest first.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool {
		return e.ID == id
	})
}
