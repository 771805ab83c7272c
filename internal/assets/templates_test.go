package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

func TestParseTemplateWithFallback(t *testing.T) {
	tests := []struct {
		name             string
		templatePath     func(t *testing.T) string
		wantTemplateName string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Title | upper }}`), 0644))
				return templatePath
			},
			wantTemplateName: "custom.md.go.tmpl",
		},
		{
			name: "uses embedded template when file doesn't exist",
			templatePath: func(t *testing.T) string {
				return "/non/existent/invalid.md.go.tmpl"
			},
			wantTemplateName: vocabularyTemplateName,
		},
		{
			name: "uses embedded template when path is empty",
			templatePath: func(t *testing.T) string {
				return ""
			},
			wantTemplateName: vocabularyTemplateName,
		},
		{
			name: "uses embedded template when file is broken",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "broken.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Title `), 0644))
				return templatePath
			},
			wantTemplateName: vocabularyTemplateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTemplateWithFallback(tt.templatePath(t), vocabularyTemplateName, fallbackVocabularyTemplate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, got.Name())
		})
	}
}

func TestWriteVocabularySheet(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	data := VocabularyTemplate{
		Title:       "Vocabulary",
		GeneratedAt: createdAt,
		Cards: NewVocabularyCards([]vocabulary.Entry{
			{ID: "e2", Word: "resilient", Meaning: "回復力のある", Example: "She is resilient.", CreatedAt: createdAt},
			{ID: "e1", Word: "cat", Meaning: "猫", CreatedAt: createdAt},
		}),
		Attempts: 4,
		Correct:  3,
		Accuracy: 75,
	}

	t.Run("embedded template", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteVocabularySheet(&buf, "", data))

		got := buf.String()
		assert.Contains(t, got, "# Vocabulary\n")
		assert.Contains(t, got, "_Generated on 2025-03-14. 2 words, 4 attempts, 75% accuracy._")
		assert.Contains(t, got, "## resilient\n\n- **Meaning**: 回復力のある\n- **Example**: _She is resilient._\n- **Added**: 2025-03-14\n")
		assert.Contains(t, got, "## cat\n\n- **Meaning**: 猫\n- **Added**: 2025-03-14\n")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("## resilient")), bytes.Index(buf.Bytes(), []byte("## cat")))
	})

	t.Run("custom template", func(t *testing.T) {
		templatePath := filepath.Join(t.TempDir(), "words.md.go.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte(`{{ range .Cards }}{{ .Word }}={{ .Meaning }};{{ end }}`), 0644))

		var buf bytes.Buffer
		require.NoError(t, WriteVocabularySheet(&buf, templatePath, data))
		assert.Equal(t, "resilient=回復力のある;cat=猫;", buf.String())
	})

	t.Run("execution error", func(t *testing.T) {
		templatePath := filepath.Join(t.TempDir(), "bad.md.go.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Missing }}`), 0644))

		var buf bytes.Buffer
		err := WriteVocabularySheet(&buf, templatePath, data)
		assert.ErrorContains(t, err, "tmpl.Execute()")
	})
}
