package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps each key in its own JSON file under a directory.
type FileStore struct {
	directory string
}

func NewFileStore(directory string) *FileStore {
	return &FileStore{directory: directory}
}

// Path returns the file that holds key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.directory, fileName(key))
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := s.Path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return data, true, nil
}

// Set replaces the file atomically by writing a temporary file and renaming it.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.directory, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", s.directory, err)
	}

	file, err := os.CreateTemp(s.directory, ".wordcard-*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", s.directory, err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(value); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write(%s) > %w", tmpPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close(%s) > %w", tmpPath, err)
	}

	path := s.Path(key)
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("os.Rename(%s, %s) > %w", tmpPath, path, err)
	}
	return nil
}

// fileName maps a namespaced key such as "wordcard:snapshot:v1" to a
// portable file name.
func fileName(key string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, key)
	return name + ".json"
}
