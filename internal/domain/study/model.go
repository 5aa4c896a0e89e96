package study

import (
	"time"

	"wordmem/internal/domain/word"
)

// Group labels which half of a ranked result a candidate came from.
type Group string

const (
	GroupReview Group = "review" // previously studied, due again
	GroupStudy  Group = "study"  // never studied
)

// Record is one user's learning state for one word.
// (UserID, WID) is the composite key; exactly one record exists per pair.
// A nil LastReview means the word has never been reviewed, which only
// happens for rows seeded by import.
type Record struct {
	UserID     int        `json:"user_id"`
	WID        string     `json:"wid"`
	LastReview *time.Time `json:"ldate"`
	Score      float64    `json:"score"`
	Level      int        `json:"level"`
	Note       string     `json:"note,omitempty"`
}

// Candidate is a catalog word joined with the user's record and the
// decay metrics computed against the reference instant. For the study
// group the metrics stay at their zero values.
type Candidate struct {
	word.Word
	Group           Group      `json:"word_group"`
	Score           float64    `json:"score"`
	Level           int        `json:"level"`
	Note            string     `json:"note,omitempty"`
	LastReview      *time.Time `json:"ldate"`
	DaysSinceReview float64    `json:"days_diff"`
	RetentionRate   float64    `json:"retention_rate"`
	Priority        float64    `json:"priority"`
}

// UpdatedScore is the result of recording a recall outcome.
// Changes is the upsert's affected row count and is always 1 on success.
type UpdatedScore struct {
	WID     string  `json:"wid"`
	Score   float64 `json:"score"`
	Changes int64   `json:"changes"`
}

// Details carries an optional note/level edit. Nil fields are left untouched
// in the store.
type Details struct {
	Note  *string
	Level *int
}

// Empty reports whether the edit would change nothing.
func (d Details) Empty() bool {
	return d.Note == nil && d.Level == nil
}
