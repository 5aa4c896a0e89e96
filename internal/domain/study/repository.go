package study

import (
	"context"
	"time"

	"wordmem/internal/domain/word"
)

// Entry is a catalog word joined with the user's record fields, as read by
// the ranking queries. Score, Level and Note stay at their zero values when
// the user has no record for the word.
type Entry struct {
	word.Word
	LastReview *time.Time
	Score      float64
	Level      int
	Note       string
}

// Repository is the study-record store. Upsert must be atomic on
// (userID, wid) so concurrent outcome reports serialize instead of losing
// an update.
type Repository interface {
	Get(ctx context.Context, userID int, wid string) (*Record, error)

	// QueryDueReviews returns every catalog word the user has reviewed at
	// least once (non-null last review), unordered.
	QueryDueReviews(ctx context.Context, userID int) ([]Entry, error)

	// QueryNewWords returns catalog words the user has never reviewed,
	// ordered by level descending then wid ascending, bounded by limit
	// and offset.
	QueryNewWords(ctx context.Context, userID, limit, offset int) ([]Entry, error)

	// ListAll returns the full catalog joined with the user's records.
	ListAll(ctx context.Context, userID int) ([]Entry, error)

	// Upsert atomically inserts or replaces the review state for
	// (userID, wid), setting the last review instant and score while
	// leaving note and level untouched. It returns the affected row count.
	Upsert(ctx context.Context, userID int, wid string, reviewedAt time.Time, score float64) (int64, error)

	// UpdateDetails applies a partial note/level edit without touching the
	// score or review timestamp. It returns ErrNotFound when the user has
	// no record for the word.
	UpdateDetails(ctx context.Context, userID int, wid string, details Details) error
}
