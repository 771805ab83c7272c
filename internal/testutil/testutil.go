// Package testutil provides shared test helpers for creating config files and vocabulary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/storage"
	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

// SetupTestConfig creates a config file using the file backend with its data
// and output directories under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"data", "outputs"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  backend: file
  directory: %s
outputs:
  directory: %s
`,
		filepath.Join(tmpDir, "data"),
		filepath.Join(tmpDir, "outputs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DataDirectory returns the storage directory configured by SetupTestConfig.
func DataDirectory(tmpDir string) string {
	return filepath.Join(tmpDir, "data")
}

// CreateSnapshot writes a snapshot with entries and counters where the file
// backend configured by SetupTestConfig reads it.
func CreateSnapshot(t *testing.T, tmpDir string, attempts, correct int, entries ...vocabulary.Entry) {
	t.Helper()

	data, err := storage.Encode(storage.Snapshot{
		Vocab:    entries,
		Attempts: attempts,
		Correct:  correct,
	})
	require.NoError(t, err)

	store := storage.NewFileStore(DataDirectory(tmpDir))
	require.NoError(t, os.WriteFile(store.Path(storage.DefaultKey), data, 0644))
}

// NewEntry returns an entry created at a fixed time.
func NewEntry(id, word, meaning, example string) vocabulary.Entry {
	return vocabulary.Entry{
		ID:        id,
		Word:      word,
		Meaning:   meaning,
		Example:   example,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
