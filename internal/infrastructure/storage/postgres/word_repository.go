package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"wordmem/internal/domain/word"
)

type WordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewWordRepository(pool *pgxpool.Pool, log *slog.Logger) *WordRepository {
	return &WordRepository{
		pool: pool,
		log:  log.With("component", "word_repository"),
	}
}

func (r *WordRepository) List(ctx context.Context) ([]word.Word, error) {
	const query = `
		SELECT wid, word, pron, pos, explain, audio
		FROM words
		ORDER BY wid`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list words", "error", err)
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	var words []word.Word
	for rows.Next() {
		var w word.Word
		if err := rows.Scan(&w.WID, &w.Word, &w.Pron, &w.POS, &w.Explain, &w.Audio); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

func (r *WordRepository) Get(ctx context.Context, wid string) (*word.Word, error) {
	const query = `
		SELECT wid, word, pron, pos, explain, audio
		FROM words
		WHERE wid = $1`

	var w word.Word
	err := r.pool.QueryRow(ctx, query, wid).
		Scan(&w.WID, &w.Word, &w.Pron, &w.POS, &w.Explain, &w.Audio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, word.ErrNotFound
		}
		r.log.Error("failed to get word", "wid", wid, "error", err)
		return nil, fmt.Errorf("get word: %w", err)
	}

	return &w, nil
}

// CreateBatch inserts catalog entries inside one transaction, skipping wids
// that already exist. It returns the number of rows actually inserted.
func (r *WordRepository) CreateBatch(ctx context.Context, words []word.Word) (int, error) {
	const query = `
		INSERT INTO words (wid, word, pron, pos, explain, audio)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (wid) DO NOTHING`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, w := range words {
		tag, err := tx.Exec(ctx, query, w.WID, w.Word, w.Pron, w.POS, w.Explain, w.Audio)
		if err != nil {
			r.log.Error("failed to insert word", "wid", w.WID, "error", err)
			return 0, fmt.Errorf("insert word %s: %w", w.WID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	return inserted, nil
}
