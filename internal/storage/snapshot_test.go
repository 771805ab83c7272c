package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

var testCreatedAt = time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		want     string
	}{
		{
			name:     "empty snapshot keeps an empty list",
			snapshot: Snapshot{},
			want:     `{"vocab":[],"attempts":0,"correct":0}`,
		},
		{
			name: "example is omitted when empty",
			snapshot: Snapshot{
				Vocab: []vocabulary.Entry{
					{ID: "b", Word: "resilient", Meaning: "able to recover", Example: "She is resilient.", CreatedAt: testCreatedAt},
					{ID: "a", Word: "cat", Meaning: "猫", CreatedAt: testCreatedAt},
				},
				Attempts: 3,
				Correct:  1,
			},
			want: `{"vocab":[` +
				`{"id":"b","word":"resilient","meaning":"able to recover","example":"She is resilient.","createdAt":1741944413589},` +
				`{"id":"a","word":"cat","meaning":"猫","createdAt":1741944413589}` +
				`],"attempts":3,"correct":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.snapshot)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	snapshot := Snapshot{
		Vocab: []vocabulary.Entry{
			{ID: "3", Word: "ephemeral", Meaning: "lasting a very short time", Example: "Fame is ephemeral.", CreatedAt: testCreatedAt.Add(2 * time.Hour)},
			{ID: "2", Word: "dog", Meaning: "犬", CreatedAt: testCreatedAt.Add(time.Hour)},
			{ID: "1", Word: "cat", Meaning: "猫", CreatedAt: testCreatedAt},
		},
		Attempts: 10,
		Correct:  7,
	}

	data, err := Encode(snapshot)
	require.NoError(t, err)
	assert.Equal(t, snapshot, Decode(data))
}

func TestDecode(t *testing.T) {
	catEntry := vocabulary.Entry{ID: "a", Word: "cat", Meaning: "猫", CreatedAt: time.UnixMilli(1700000000000).UTC()}

	tests := []struct {
		name string
		data string
		want Snapshot
	}{
		{
			name: "invalid json",
			data: `{"vocab": [`,
			want: Snapshot{},
		},
		{
			name: "not an object",
			data: `[1, 2, 3]`,
			want: Snapshot{},
		},
		{
			name: "null document",
			data: `null`,
			want: Snapshot{},
		},
		{
			name: "missing fields default to empty",
			data: `{}`,
			want: Snapshot{},
		},
		{
			name: "vocab is a number but counters are kept",
			data: `{"vocab": 42, "attempts": 5, "correct": 2}`,
			want: Snapshot{Attempts: 5, Correct: 2},
		},
		{
			name: "attempts has the wrong type",
			data: `{"vocab": [{"id":"a","word":"cat","meaning":"猫","createdAt":1700000000000}], "attempts": "5", "correct": 2}`,
			want: Snapshot{Vocab: []vocabulary.Entry{catEntry}, Correct: 2},
		},
		{
			name: "negative and fractional counters are dropped",
			data: `{"attempts": -1, "correct": 1.5}`,
			want: Snapshot{},
		},
		{
			name: "null counter is dropped",
			data: `{"attempts": null, "correct": 0}`,
			want: Snapshot{},
		},
		{
			name: "unknown fields are ignored",
			data: `{"version": 2, "theme": "dark", "attempts": 1, "correct": 1}`,
			want: Snapshot{Attempts: 1, Correct: 1},
		},
		{
			name: "malformed entries are skipped individually",
			data: `{"vocab": [
				{"id":"a","word":"cat","meaning":"猫","createdAt":1700000000000},
				{"id":"b","word":"","meaning":"empty word","createdAt":1},
				{"id":7,"word":"dog","meaning":"犬","createdAt":1},
				{"word":"no id","meaning":"x","createdAt":1},
				"not an object",
				{"id":"a","word":"duplicate","meaning":"x","createdAt":1}
			]}`,
			want: Snapshot{Vocab: []vocabulary.Entry{catEntry}},
		},
		{
			name: "null example is treated as absent",
			data: `{"vocab": [{"id":"a","word":"cat","meaning":"猫","example":null,"createdAt":1700000000000}]}`,
			want: Snapshot{Vocab: []vocabulary.Entry{catEntry}},
		},
		{
			name: "missing createdAt falls back to the epoch",
			data: `{"vocab": [{"id":"a","word":"cat","meaning":"猫"}]}`,
			want: Snapshot{Vocab: []vocabulary.Entry{{ID: "a", Word: "cat", Meaning: "猫", CreatedAt: time.UnixMilli(0).UTC()}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode([]byte(tt.data)))
		})
	}
}
