// Package storage persists the vocabulary and quiz counters as a single JSON
// snapshot kept under one key of a key-value store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

//go:generate mockgen -source=snapshot.go -destination=../mocks/storage/mock_persister.go -package=mock_storage Persister

// Persister loads and saves the whole snapshot at once.
type Persister interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
}

// Snapshot is the only durable state: the vocabulary, newest first, and the
// cumulative quiz counters.
type Snapshot struct {
	Vocab    []vocabulary.Entry
	Attempts int
	Correct  int
}

type snapshotRecord struct {
	Vocab    []entryRecord `json:"vocab"`
	Attempts int           `json:"attempts"`
	Correct  int           `json:"correct"`
}

type entryRecord struct {
	ID      string  `json:"id"`
	Word    string  `json:"word"`
	Meaning string  `json:"meaning"`
	Example *string `json:"example,omitempty"`
	// CreatedAt is Unix time in milliseconds.
	CreatedAt float64 `json:"createdAt"`
}

// Encode serializes a snapshot into its stored JSON layout.
func Encode(snapshot Snapshot) ([]byte, error) {
	record := snapshotRecord{
		Vocab:    make([]entryRecord, 0, len(snapshot.Vocab)),
		Attempts: snapshot.Attempts,
		Correct:  snapshot.Correct,
	}
	for _, e := range snapshot.Vocab {
		r := entryRecord{
			ID:        e.ID,
			Word:      e.Word,
			Meaning:   e.Meaning,
			CreatedAt: float64(e.CreatedAt.UnixMilli()),
		}
		if e.Example != "" {
			example := e.Example
			r.Example = &example
		}
		record.Vocab = append(record.Vocab, r)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	return data, nil
}

// Decode reads a stored blob leniently. Anything that is not a JSON object
// yields an empty snapshot. Each top-level field is validated on its own and
// dropped when it has the wrong shape, so valid siblings survive.
func Decode(data []byte) Snapshot {
	var snapshot Snapshot

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		slog.Warn("discarding malformed snapshot", "error", err)
		return snapshot
	}

	if raw, ok := fields["vocab"]; ok {
		vocab, err := decodeVocab(raw)
		if err != nil {
			slog.Warn("dropping snapshot field", "field", "vocab", "error", err)
		} else {
			snapshot.Vocab = vocab
		}
	}
	if raw, ok := fields["attempts"]; ok {
		attempts, err := decodeCounter(raw)
		if err != nil {
			slog.Warn("dropping snapshot field", "field", "attempts", "error", err)
		} else {
			snapshot.Attempts = attempts
		}
	}
	if raw, ok := fields["correct"]; ok {
		correct, err := decodeCounter(raw)
		if err != nil {
			slog.Warn("dropping snapshot field", "field", "correct", "error", err)
		} else {
			snapshot.Correct = correct
		}
	}
	return snapshot
}

func decodeVocab(raw json.RawMessage) ([]vocabulary.Entry, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(vocab) > %w", err)
	}
	if items == nil {
		return nil, fmt.Errorf("vocab is not a list")
	}

	vocab := make([]vocabulary.Entry, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		entry, err := decodeEntry(item)
		if err != nil {
			slog.Warn("skipping vocabulary entry", "index", i, "error", err)
			continue
		}
		if seen[entry.ID] {
			slog.Warn("skipping vocabulary entry", "index", i, "error", "duplicate id", "id", entry.ID)
			continue
		}
		seen[entry.ID] = true
		vocab = append(vocab, entry)
	}
	return vocab, nil
}

func decodeEntry(raw json.RawMessage) (vocabulary.Entry, error) {
	var r entryRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return vocabulary.Entry{}, fmt.Errorf("json.Unmarshal(entry) > %w", err)
	}
	if r.ID == "" {
		return vocabulary.Entry{}, fmt.Errorf("entry has no id")
	}
	if strings.TrimSpace(r.Word) == "" || strings.TrimSpace(r.Meaning) == "" {
		return vocabulary.Entry{}, fmt.Errorf("entry %s has an empty word or meaning", r.ID)
	}

	entry := vocabulary.Entry{
		ID:        r.ID,
		Word:      r.Word,
		Meaning:   r.Meaning,
		CreatedAt: time.UnixMilli(int64(r.CreatedAt)).UTC(),
	}
	if r.Example != nil {
		entry.Example = *r.Example
	}
	return entry, nil
}

func decodeCounter(raw json.RawMessage) (int, error) {
	var n *float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("json.Unmarshal(counter) > %w", err)
	}
	if n == nil {
		return 0, fmt.Errorf("counter is null")
	}
	if *n < 0 || *n != math.Trunc(*n) || *n > math.MaxInt32 {
		return 0, fmt.Errorf("counter %v is not a non-negative integer", *n)
	}
	return int(*n), nil
}
