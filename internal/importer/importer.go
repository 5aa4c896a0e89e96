package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"wordmem/internal/domain/word"
)

// Entry is one row of an import file. The pos label is free-form and gets
// classified onto the closed tag set.
type Entry struct {
	Word    string `json:"word"`
	Pron    string `json:"pron"`
	POS     string `json:"pos"`
	Explain string `json:"explain"`
	Audio   string `json:"audio"`
}

// Summary reports what a single import run did.
type Summary struct {
	Total    int
	Imported int
	Skipped  int // duplicates and invalid rows
}

type Importer struct {
	words word.Servicer
	log   *slog.Logger
}

func New(words word.Servicer, log *slog.Logger) *Importer {
	return &Importer{
		words: words,
		log:   log.With("component", "importer"),
	}
}

// ImportFile loads a JSON array of entries and merges it into the catalog.
// Rows whose wid already exists are left untouched.
func (i *Importer) ImportFile(ctx context.Context, path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read import file: %w", err)
	}
	return i.Import(ctx, data)
}

// Import merges a JSON array of entries into the catalog.
func (i *Importer) Import(ctx context.Context, data []byte) (Summary, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return Summary{}, fmt.Errorf("parse import file: %w", err)
	}

	words := make([]word.Word, 0, len(entries))
	invalid := 0
	for _, e := range entries {
		if e.Word == "" || e.Explain == "" {
			i.log.Warn("skipping incomplete entry", "word", e.Word)
			invalid++
			continue
		}
		pos := word.ClassifyPOS(e.POS)
		words = append(words, word.Word{
			WID:     word.MakeWID(e.Word, pos),
			Word:    e.Word,
			Pron:    e.Pron,
			POS:     pos,
			Explain: e.Explain,
			Audio:   e.Audio,
		})
	}

	created, err := i.words.Import(ctx, words)
	if err != nil {
		return Summary{}, fmt.Errorf("import words: %w", err)
	}

	i.log.Info("import finished",
		"total", len(entries), "imported", created, "skipped", len(entries)-created)

	return Summary{
		Total:    len(entries),
		Imported: created,
		Skipped:  len(entries) - created,
	}, nil
}
