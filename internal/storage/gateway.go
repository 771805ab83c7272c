package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultKey is the namespaced key the snapshot is stored under.
const DefaultKey = "wordcard:snapshot:v1"

// Gateway implements Persister on top of a KeyValueStore.
type Gateway struct {
	store KeyValueStore
	key   string
}

func NewGateway(store KeyValueStore, key string) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	return &Gateway{
		store: store,
		key:   key,
	}
}

// Load returns an empty snapshot when nothing is stored yet or the stored
// blob is malformed. Only failures of the underlying store are errors.
func (g *Gateway) Load(ctx context.Context) (Snapshot, error) {
	data, ok, err := g.store.Get(ctx, g.key)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store.Get(%s) > %w", g.key, err)
	}
	if !ok {
		slog.Debug("no snapshot stored yet", "key", g.key)
		return Snapshot{}, nil
	}
	return Decode(data), nil
}

// Save overwrites the stored snapshot with a single write.
func (g *Gateway) Save(ctx context.Context, snapshot Snapshot) error {
	data, err := Encode(snapshot)
	if err != nil {
		return fmt.Errorf("Encode() > %w", err)
	}
	if err := g.store.Set(ctx, g.key, data); err != nil {
		return fmt.Errorf("store.Set(%s) > %w", g.key, err)
	}
	slog.Debug("snapshot saved", "key", g.key, "entries", len(snapshot.Vocab))
	return nil
}
