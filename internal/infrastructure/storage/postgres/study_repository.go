package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"wordmem/internal/domain/study"
)

type StudyRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewStudyRepository(pool *pgxpool.Pool, log *slog.Logger) *StudyRepository {
	return &StudyRepository{
		pool: pool,
		log:  log.With("component", "study_repository"),
	}
}

func (r *StudyRepository) Get(ctx context.Context, userID int, wid string) (*study.Record, error) {
	const query = `
		SELECT user_id, wid, last_review, score, level, note
		FROM study_records
		WHERE user_id = $1 AND wid = $2`

	var rec study.Record
	err := r.pool.QueryRow(ctx, query, userID, wid).
		Scan(&rec.UserID, &rec.WID, &rec.LastReview, &rec.Score, &rec.Level, &rec.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, study.ErrNotFound
		}
		r.log.Error("failed to get study record",
			"user_id", userID, "wid", wid, "error", err)
		return nil, fmt.Errorf("get study record: %w", err)
	}

	return &rec, nil
}

func (r *StudyRepository) QueryDueReviews(ctx context.Context, userID int) ([]study.Entry, error) {
	const query = `
		SELECT w.wid, w.word, w.pron, w.pos, w.explain, w.audio,
		       sr.last_review, sr.score, sr.level, sr.note
		FROM words w
		JOIN study_records sr ON sr.wid = w.wid AND sr.user_id = $1
		WHERE sr.last_review IS NOT NULL`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to query due reviews", "user_id", userID, "error", err)
		return nil, fmt.Errorf("query due reviews: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *StudyRepository) QueryNewWords(ctx context.Context, userID, limit, offset int) ([]study.Entry, error) {
	const query = `
		SELECT w.wid, w.word, w.pron, w.pos, w.explain, w.audio,
		       sr.last_review, COALESCE(sr.score, 0), COALESCE(sr.level, 0), COALESCE(sr.note, '')
		FROM words w
		LEFT JOIN study_records sr ON sr.wid = w.wid AND sr.user_id = $1
		WHERE sr.last_review IS NULL
		ORDER BY COALESCE(sr.level, 0) DESC, w.wid ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("failed to query new words", "user_id", userID, "error", err)
		return nil, fmt.Errorf("query new words: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *StudyRepository) ListAll(ctx context.Context, userID int) ([]study.Entry, error) {
	const query = `
		SELECT w.wid, w.word, w.pron, w.pos, w.explain, w.audio,
		       sr.last_review, COALESCE(sr.score, 0), COALESCE(sr.level, 0), COALESCE(sr.note, '')
		FROM words w
		LEFT JOIN study_records sr ON sr.wid = w.wid AND sr.user_id = $1
		ORDER BY w.wid`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list study entries", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list study entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Upsert is the single write path for review state: one atomic
// insert-or-update keyed on (user_id, wid). Note and level are never touched
// here so a score write cannot clobber a concurrent detail edit.
func (r *StudyRepository) Upsert(ctx context.Context, userID int, wid string, reviewedAt time.Time, score float64) (int64, error) {
	const query = `
		INSERT INTO study_records (user_id, wid, last_review, score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, wid) DO UPDATE
		SET last_review = EXCLUDED.last_review,
		    score = EXCLUDED.score`

	tag, err := r.pool.Exec(ctx, query, userID, wid, reviewedAt, score)
	if err != nil {
		r.log.Error("failed to upsert study record",
			"user_id", userID, "wid", wid, "error", err)
		return 0, fmt.Errorf("upsert study record: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *StudyRepository) UpdateDetails(ctx context.Context, userID int, wid string, details study.Details) error {
	const query = `
		UPDATE study_records
		SET note = COALESCE($3, note),
		    level = COALESCE($4, level)
		WHERE user_id = $1 AND wid = $2`

	tag, err := r.pool.Exec(ctx, query, userID, wid, details.Note, details.Level)
	if err != nil {
		r.log.Error("failed to update details",
			"user_id", userID, "wid", wid, "error", err)
		return fmt.Errorf("update details: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return study.ErrNotFound
	}

	return nil
}

func scanEntries(rows pgx.Rows) ([]study.Entry, error) {
	var entries []study.Entry
	for rows.Next() {
		var e study.Entry
		err := rows.Scan(
			&e.WID, &e.Word.Word, &e.Pron, &e.POS, &e.Explain, &e.Audio,
			&e.LastReview, &e.Score, &e.Level, &e.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("scan study entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
