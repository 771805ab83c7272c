// Package flashcard ties the vocabulary, the quiz session, and the running
// statistics together and persists them after every change.
package flashcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/at-ishikawa/wordcard/internal/quiz"
	"github.com/at-ishikawa/wordcard/internal/storage"
	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

// Deck is the single state container of the application. It is not safe for
// concurrent use; every call runs to completion before the next one.
type Deck struct {
	persister    storage.Persister
	store        *vocabulary.Store
	state        quiz.State
	stats        quiz.Stats
	picker       quiz.Picker
	storeOptions []vocabulary.Option
}

// Option configures a Deck.
type Option func(*Deck)

// WithPicker sets the random source used to draw questions.
func WithPicker(picker quiz.Picker) Option {
	return func(d *Deck) {
		d.picker = picker
	}
}

// WithMode sets the initial quiz mode.
func WithMode(mode quiz.Mode) Option {
	return func(d *Deck) {
		d.state = quiz.NewState(mode)
	}
}

// WithStoreOptions passes options to the underlying vocabulary store.
func WithStoreOptions(opts ...vocabulary.Option) Option {
	return func(d *Deck) {
		d.storeOptions = append(d.storeOptions, opts...)
	}
}

// Open loads the persisted snapshot once and returns a deck built from it.
func Open(ctx context.Context, persister storage.Persister, opts ...Option) (*Deck, error) {
	d := &Deck{
		persister: persister,
		picker:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(d)
	}

	snapshot, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("persister.Load() > %w", err)
	}
	d.store = vocabulary.NewStore(snapshot.Vocab, d.storeOptions...)
	d.stats = quiz.NewStats(snapshot.Attempts, snapshot.Correct)
	slog.Debug("deck opened", "entries", d.store.Len(), "attempts", d.stats.Attempts, "correct", d.stats.Correct)
	return d, nil
}

// Add registers a new entry. Blank input is ignored without an error and
// nothing is saved; ok reports whether an entry was created.
func (d *Deck) Add(ctx context.Context, word, meaning, example string) (entry vocabulary.Entry, ok bool, err error) {
	entry, ok = d.store.Add(word, meaning, example)
	if !ok {
		slog.Debug("ignoring blank entry", "word", word, "meaning", meaning)
		return entry, false, nil
	}
	if err := d.save(ctx); err != nil {
		return entry, true, err
	}
	return entry, true, nil
}

// Remove deletes the entry with id. A missing id is a no-op.
func (d *Deck) Remove(ctx context.Context, id string) (bool, error) {
	if !d.store.Remove(id) {
		return false, nil
	}
	return true, d.save(ctx)
}

// Import adds entries created elsewhere, skipping blank ones and IDs that are
// already present, and saves once. It returns the entries that were added.
func (d *Deck) Import(ctx context.Context, entries []vocabulary.Entry) ([]vocabulary.Entry, error) {
	var added []vocabulary.Entry
	// entries are newest first, so restore from the oldest to keep that order
	for i := len(entries) - 1; i >= 0; i-- {
		entry, ok := d.store.Restore(entries[i])
		if !ok {
			slog.Debug("skipping imported entry", "id", entries[i].ID, "word", entries[i].Word)
			continue
		}
		added = append(added, entry)
	}
	if len(added) == 0 {
		return nil, nil
	}
	return added, d.save(ctx)
}

// StartQuiz draws the first question. It returns quiz.ErrNoVocabulary when
// there is nothing to ask, leaving the deck untouched.
func (d *Deck) StartQuiz() (quiz.Question, error) {
	state, err := d.state.Start(d.store.Entries(), d.picker)
	if err != nil {
		return quiz.Question{}, err
	}
	d.state = state
	q, _ := state.Question()
	return q, nil
}

// Submit evaluates answer and updates the statistics. It is a no-op unless a
// question is awaiting an answer.
func (d *Deck) Submit(ctx context.Context, answer string) (quiz.Result, bool, error) {
	state, result, ok := d.state.Submit(answer)
	if !ok {
		return quiz.Result{}, false, nil
	}
	d.state = state
	d.stats = d.stats.Record(result.Correct)
	return result, true, d.save(ctx)
}

// Next draws another question. If every entry was removed meanwhile the quiz
// stops and quiz.ErrNoVocabulary is returned.
func (d *Deck) Next() (quiz.Question, error) {
	if !d.state.Running() {
		return d.StartQuiz()
	}
	state, err := d.state.Next(d.store.Entries(), d.picker)
	if errors.Is(err, quiz.ErrNoVocabulary) {
		d.state = d.state.Stop()
		return quiz.Question{}, err
	}
	if err != nil {
		return quiz.Question{}, err
	}
	d.state = state
	q, _ := state.Question()
	return q, nil
}

// Stop ends the running quiz, if any.
func (d *Deck) Stop() {
	d.state = d.state.Stop()
}

// SetMode changes the quiz direction. It fails with quiz.ErrQuizInProgress
// while a quiz is running.
func (d *Deck) SetMode(mode quiz.Mode) error {
	state, err := d.state.WithMode(mode)
	if err != nil {
		return err
	}
	d.state = state
	return nil
}

// ResetStats sets both counters back to zero.
func (d *Deck) ResetStats(ctx context.Context) error {
	d.stats = d.stats.Reset()
	return d.save(ctx)
}

func (d *Deck) Entries() []vocabulary.Entry {
	return d.store.Entries()
}

func (d *Deck) Stats() quiz.Stats {
	return d.stats
}

func (d *Deck) State() quiz.State {
	return d.state
}

// Snapshot returns the durable part of the deck.
func (d *Deck) Snapshot() storage.Snapshot {
	return storage.Snapshot{
		Vocab:    d.store.Entries(),
		Attempts: d.stats.Attempts,
		Correct:  d.stats.Correct,
	}
}

func (d *Deck) save(ctx context.Context) error {
	if err := d.persister.Save(ctx, d.Snapshot()); err != nil {
		return fmt.Errorf("persister.Save() > %w", err)
	}
	return nil
}
