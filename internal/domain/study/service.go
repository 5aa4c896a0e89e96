package study

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/slog"
)

// DefaultNewPerBatch bounds how many never-studied words a single ranked
// result may introduce.
const DefaultNewPerBatch = 20

type Servicer interface {
	Rank(ctx context.Context, userID, limit, offset int, at time.Time) ([]Candidate, error)
	RecordOutcome(ctx context.Context, userID int, wid string, outcome Outcome, at time.Time) (UpdatedScore, error)
	UpdateDetails(ctx context.Context, userID int, wid string, details Details) error
	ListAll(ctx context.Context, userID int) ([]Candidate, error)
}

type Service struct {
	repo        Repository
	newPerBatch int
	log         *slog.Logger
}

func NewService(repo Repository, newPerBatch int, log *slog.Logger) Servicer {
	if newPerBatch <= 0 {
		newPerBatch = DefaultNewPerBatch
	}
	return &Service{
		repo:        repo,
		newPerBatch: newPerBatch,
		log:         log.With("component", "study_service"),
	}
}

// Rank produces the next words to present: every word due for review, ordered
// most-at-risk first, followed by a bounded page of never-studied words.
//
// limit is accepted for wire compatibility but the review set is never
// truncated and the study page is bounded by the new-per-batch cap instead;
// offset applies to the study sub-query only.
func (s *Service) Rank(ctx context.Context, userID, limit, offset int, at time.Time) ([]Candidate, error) {
	_ = limit

	due, err := s.repo.QueryDueReviews(ctx, userID)
	if err != nil {
		s.log.Error("failed to query due reviews", "user_id", userID, "error", err)
		return nil, fmt.Errorf("query due reviews: %w", err)
	}

	review := make([]Candidate, 0, len(due))
	for _, e := range due {
		review = append(review, reviewCandidate(e, at))
	}
	sortReviewSet(review)

	fresh, err := s.repo.QueryNewWords(ctx, userID, s.newPerBatch, offset)
	if err != nil {
		s.log.Error("failed to query new words", "user_id", userID, "error", err)
		return nil, fmt.Errorf("query new words: %w", err)
	}

	combined := review
	for _, e := range fresh {
		combined = append(combined, studyCandidate(e))
	}

	s.log.Debug("ranked words",
		"user_id", userID, "review", len(review), "study", len(fresh))

	return combined, nil
}

// RecordOutcome applies a recall outcome to the user's record for the word
// and persists the new score with an atomic upsert.
func (s *Service) RecordOutcome(ctx context.Context, userID int, wid string, outcome Outcome, at time.Time) (UpdatedScore, error) {
	if !outcome.IsValid() {
		return UpdatedScore{}, fmt.Errorf("%w: %q", ErrInvalidOutcome, string(outcome))
	}

	prior, err := s.repo.Get(ctx, userID, wid)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("failed to load study record", "user_id", userID, "wid", wid, "error", err)
		return UpdatedScore{}, fmt.Errorf("load study record: %w", err)
	}

	score := NextScore(prior, outcome, at)

	changes, err := s.repo.Upsert(ctx, userID, wid, at, score)
	if err != nil {
		s.log.Error("failed to upsert study record", "user_id", userID, "wid", wid, "error", err)
		return UpdatedScore{}, fmt.Errorf("upsert study record: %w", err)
	}
	if changes != 1 {
		return UpdatedScore{}, fmt.Errorf("%w: %d rows", ErrUpsertNoEffect, changes)
	}

	s.log.Info("recall outcome recorded",
		"user_id", userID, "wid", wid, "outcome", outcome, "score", score)

	return UpdatedScore{WID: wid, Score: score, Changes: changes}, nil
}

// UpdateDetails applies a note/level edit independent of scoring. Unset
// fields are preserved.
func (s *Service) UpdateDetails(ctx context.Context, userID int, wid string, details Details) error {
	if details.Empty() {
		return nil
	}

	if err := s.repo.UpdateDetails(ctx, userID, wid, details); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update details", "user_id", userID, "wid", wid, "error", err)
		return fmt.Errorf("update details: %w", err)
	}
	return nil
}

// ListAll returns the whole catalog joined with the user's study state,
// wid-ordered, without decay metrics.
func (s *Service) ListAll(ctx context.Context, userID int) ([]Candidate, error) {
	entries, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		s.log.Error("failed to list words", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list words: %w", err)
	}

	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		c := studyCandidate(e)
		if e.LastReview != nil {
			c.Group = GroupReview
			c.LastReview = e.LastReview
		}
		out = append(out, c)
	}
	return out, nil
}

func reviewCandidate(e Entry, at time.Time) Candidate {
	days := DaysSince(*e.LastReview, at)
	return Candidate{
		Word:            e.Word,
		Group:           GroupReview,
		Score:           e.Score,
		Level:           e.Level,
		Note:            e.Note,
		LastReview:      e.LastReview,
		DaysSinceReview: days,
		RetentionRate:   Retention(days, e.Score),
		Priority:        Priority(days, e.Score),
	}
}

func studyCandidate(e Entry) Candidate {
	return Candidate{
		Word:  e.Word,
		Group: GroupStudy,
		Score: e.Score,
		Level: e.Level,
		Note:  e.Note,
	}
}

// sortReviewSet orders by priority descending, then level descending, then
// wid ascending as the deterministic tie-break.
func sortReviewSet(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Priority != cs[j].Priority {
			return cs[i].Priority > cs[j].Priority
		}
		if cs[i].Level != cs[j].Level {
			return cs[i].Level > cs[j].Level
		}
		return cs[i].WID < cs[j].WID
	})
}
