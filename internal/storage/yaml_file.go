package storage

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

// VocabularyFile is the YAML layout used by export and import.
type VocabularyFile struct {
	Entries []vocabulary.Entry `yaml:"entries"`
}

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode(%s) > %w", path, err)
	}
	return result, nil
}

func writeYaml[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	return encoder.Close()
}

// ReadVocabularyFile reads entries exported by WriteVocabulary.
func ReadVocabularyFile(path string) ([]vocabulary.Entry, error) {
	file, err := readYamlFile[VocabularyFile](path)
	if err != nil {
		return nil, err
	}
	return file.Entries, nil
}

// WriteVocabulary writes entries as YAML.
func WriteVocabulary(w io.Writer, entries []vocabulary.Entry) error {
	return writeYaml(w, VocabularyFile{Entries: entries})
}
