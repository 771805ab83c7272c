package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/assets"
	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/flashcard"
	"github.com/at-ishikawa/wordcard/internal/pdf"
	"github.com/at-ishikawa/wordcard/internal/storage"
)

const (
	exportFormatMarkdown = "markdown"
	exportFormatPDF      = "pdf"
	exportFormatYAML     = "yaml"

	stdoutPath = "-"
)

var exportExtensions = map[string]string{
	exportFormatMarkdown: ".md",
	exportFormatPDF:      ".pdf",
	exportFormatYAML:     ".yml",
}

func newExportCommand() *cobra.Command {
	var format string
	var output string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the vocabulary as a markdown or PDF sheet, or as YAML for import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			extension, ok := exportExtensions[format]
			if !ok {
				return fmt.Errorf("unknown export format %q: must be one of markdown, pdf, yaml", format)
			}
			if format == exportFormatPDF && output == stdoutPath {
				return fmt.Errorf("pdf export cannot be written to stdout")
			}

			return runWithDeck(cmd, func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error {
				path := output
				if path == "" {
					path = filepath.Join(cfg.Outputs.Directory, "vocabulary"+extension)
				}

				var content bytes.Buffer
				switch format {
				case exportFormatYAML:
					if err := storage.WriteVocabulary(&content, deck.Entries()); err != nil {
						return err
					}
				default:
					if err := writeVocabularySheet(&content, cfg, deck); err != nil {
						return err
					}
				}

				if path == stdoutPath {
					_, err := cmd.OutOrStdout().Write(content.Bytes())
					return err
				}

				if format == exportFormatPDF {
					pdfPath, err := pdf.WriteMarkdown(content.Bytes(), path)
					if err != nil {
						return fmt.Errorf("pdf.WriteMarkdown() > %w", err)
					}
					path = pdfPath
				} else if err := writeFile(path, content.Bytes()); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(deck.Entries()), path)
				return nil
			})
		},
	}
	command.Flags().StringVar(&format, "format", exportFormatMarkdown, "output format: markdown, pdf, or yaml")
	command.Flags().StringVarP(&output, "output", "o", "", "output file path, or - for stdout (default: <outputs.directory>/vocabulary.<ext>)")
	return command
}

func writeVocabularySheet(w io.Writer, cfg *config.Config, deck *flashcard.Deck) error {
	stats := deck.Stats()
	data := assets.VocabularyTemplate{
		Title:       "Vocabulary",
		GeneratedAt: time.Now(),
		Cards:       assets.NewVocabularyCards(deck.Entries()),
		Attempts:    stats.Attempts,
		Correct:     stats.Correct,
		Accuracy:    stats.Accuracy(),
	}
	if err := assets.WriteVocabularySheet(w, cfg.Templates.VocabularyTemplate, data); err != nil {
		return fmt.Errorf("assets.WriteVocabularySheet() > %w", err)
	}
	return nil
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
