package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_storage "github.com/at-ishikawa/wordcard/internal/mocks/storage"
	"github.com/at-ishikawa/wordcard/internal/storage"
	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

func TestGateway_RoundTrip(t *testing.T) {
	ctx := context.Background()
	snapshot := storage.Snapshot{
		Vocab: []vocabulary.Entry{
			{ID: "2", Word: "resilient", Meaning: "able to recover quickly", Example: "Kids are resilient.", CreatedAt: time.UnixMilli(1700000001000).UTC()},
			{ID: "1", Word: "cat", Meaning: "猫", CreatedAt: time.UnixMilli(1700000000000).UTC()},
		},
		Attempts: 3,
		Correct:  1,
	}

	backends := map[string]storage.KeyValueStore{
		"memory": storage.NewMemoryStore(),
		"file":   storage.NewFileStore(t.TempDir()),
	}
	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			gateway := storage.NewGateway(backend, "")

			empty, err := gateway.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, storage.Snapshot{}, empty)

			require.NoError(t, gateway.Save(ctx, snapshot))
			got, err := gateway.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, snapshot, got)

			// a fresh gateway over the same backend sees the same state
			got, err = storage.NewGateway(backend, storage.DefaultKey).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, snapshot, got)
		})
	}
}

func TestGateway_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *mock_storage.MockKeyValueStore)
		want      storage.Snapshot
		wantErr   bool
	}{
		{
			name: "absent key",
			setupMock: func(m *mock_storage.MockKeyValueStore) {
				m.EXPECT().Get(gomock.Any(), "custom:key").Return(nil, false, nil)
			},
			want: storage.Snapshot{},
		},
		{
			name: "malformed blob",
			setupMock: func(m *mock_storage.MockKeyValueStore) {
				m.EXPECT().Get(gomock.Any(), "custom:key").Return([]byte("not json"), true, nil)
			},
			want: storage.Snapshot{},
		},
		{
			name: "partially valid blob",
			setupMock: func(m *mock_storage.MockKeyValueStore) {
				m.EXPECT().Get(gomock.Any(), "custom:key").Return([]byte(`{"vocab":"oops","attempts":4,"correct":3}`), true, nil)
			},
			want: storage.Snapshot{Attempts: 4, Correct: 3},
		},
		{
			name: "backend failure",
			setupMock: func(m *mock_storage.MockKeyValueStore) {
				m.EXPECT().Get(gomock.Any(), "custom:key").Return(nil, false, errors.New("disk on fire"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			kv := mock_storage.NewMockKeyValueStore(ctrl)
			tt.setupMock(kv)

			got, err := storage.NewGateway(kv, "custom:key").Load(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateway_Save(t *testing.T) {
	t.Run("writes the full snapshot in one call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kv := mock_storage.NewMockKeyValueStore(ctrl)
		kv.EXPECT().
			Set(gomock.Any(), storage.DefaultKey, []byte(`{"vocab":[],"attempts":2,"correct":1}`)).
			Return(nil).
			Times(1)

		err := storage.NewGateway(kv, "").Save(context.Background(), storage.Snapshot{Attempts: 2, Correct: 1})
		assert.NoError(t, err)
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kv := mock_storage.NewMockKeyValueStore(ctrl)
		kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

		err := storage.NewGateway(kv, "").Save(context.Background(), storage.Snapshot{})
		assert.ErrorContains(t, err, "read-only")
	})
}
