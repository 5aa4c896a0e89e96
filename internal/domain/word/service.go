package word

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Word, error)
	Get(ctx context.Context, wid string) (*Word, error)
	Import(ctx context.Context, words []Word) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "word_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Word, error) {
	words, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list catalog", "error", err)
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return words, nil
}

func (s *Service) Get(ctx context.Context, wid string) (*Word, error) {
	w, err := s.repo.Get(ctx, wid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get word", "wid", wid, "error", err)
		return nil, fmt.Errorf("get word: %w", err)
	}
	return w, nil
}

// Import inserts new catalog entries, skipping wids that already exist.
// It returns the number of entries actually inserted.
func (s *Service) Import(ctx context.Context, words []Word) (int, error) {
	for i := range words {
		if err := words[i].POS.Validate(); err != nil {
			return 0, fmt.Errorf("entry %d (%s): %w", i, words[i].Word, err)
		}
	}

	inserted, err := s.repo.CreateBatch(ctx, words)
	if err != nil {
		s.log.Error("failed to import words", "count", len(words), "error", err)
		return 0, fmt.Errorf("import words: %w", err)
	}

	s.log.Info("catalog import finished", "total", len(words), "inserted", inserted)
	return inserted, nil
}
