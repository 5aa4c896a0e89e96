package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wordmem/internal/app/server/api/http/middleware/auth"
	"wordmem/internal/domain/study"
	"wordmem/internal/domain/word"

	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Rank(ctx context.Context, userID, limit, offset int, at time.Time) ([]study.Candidate, error) {
	args := m.Called(ctx, userID, limit, offset, at)
	return args.Get(0).([]study.Candidate), args.Error(1)
}

func (m *MockService) RecordOutcome(ctx context.Context, userID int, wid string, outcome study.Outcome, at time.Time) (study.UpdatedScore, error) {
	args := m.Called(ctx, userID, wid, outcome, at)
	return args.Get(0).(study.UpdatedScore), args.Error(1)
}

func (m *MockService) UpdateDetails(ctx context.Context, userID int, wid string, details study.Details) error {
	args := m.Called(ctx, userID, wid, details)
	return args.Error(0)
}

func (m *MockService) ListAll(ctx context.Context, userID int) ([]study.Candidate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]study.Candidate), args.Error(1)
}

func TestHandler_list(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	t.Run("Success_PassesReferenceInstant", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		at := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
		candidates := []study.Candidate{
			{Word: word.Word{WID: "look_for~v"}, Group: study.GroupReview, Priority: 5.2},
		}
		svc.On("Rank", mock.Anything, userID, 20, 0, at).Return(candidates, nil)

		resp, err := h.list(authCtx, &listInput{Limit: 20, TestDate: at})

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		assert.Equal(t, candidates, resp.Body.Words)
	})

	t.Run("Success_ZeroTestDateDefaultsToNow", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Rank", mock.Anything, userID, 20, 0, mock.MatchedBy(func(at time.Time) bool {
			return time.Since(at) < time.Minute
		})).Return([]study.Candidate{}, nil)

		resp, err := h.list(authCtx, &listInput{Limit: 20})

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		svc.AssertExpectations(t)
	})

	t.Run("Error_Unauthorized", func(t *testing.T) {
		h := NewHandler(nil, slog.Default(), nil)

		resp, err := h.list(context.Background(), &listInput{Limit: 20})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("Error_ServiceFailure", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Rank", mock.Anything, userID, 20, 0, mock.Anything).
			Return([]study.Candidate{}, errors.New("db down"))

		resp, err := h.list(authCtx, &listInput{Limit: 20})

		assert.Error(t, err)
		assert.Equal(t, "Error", resp.Body.Status)
	})
}

func TestHandler_status(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		input := &statusInput{}
		input.Body.WID = "resilient~j"
		input.Body.Status = study.OutcomeKnown

		svc.On("RecordOutcome", mock.Anything, userID, "resilient~j", study.OutcomeKnown, mock.Anything).
			Return(study.UpdatedScore{WID: "resilient~j", Score: 3.26, Changes: 1}, nil)

		resp, err := h.status(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		assert.Equal(t, 3.26, resp.Body.Score)
		assert.Equal(t, int64(1), resp.Body.Changes)
		svc.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success_WithNoteAndLevel", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		note := "confused with resigned"
		level := 2
		input := &statusInput{}
		input.Body.WID = "resilient~j"
		input.Body.Status = study.OutcomeUnfamiliar
		input.Body.Note = &note
		input.Body.Level = &level

		svc.On("RecordOutcome", mock.Anything, userID, "resilient~j", study.OutcomeUnfamiliar, mock.Anything).
			Return(study.UpdatedScore{WID: "resilient~j", Score: 1.63, Changes: 1}, nil)
		svc.On("UpdateDetails", mock.Anything, userID, "resilient~j",
			study.Details{Note: &note, Level: &level}).Return(nil)

		resp, err := h.status(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		svc.AssertExpectations(t)
	})

	t.Run("Error_InvalidOutcome", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		input := &statusInput{}
		input.Body.WID = "resilient~j"
		input.Body.Status = study.Outcome("mastered")

		svc.On("RecordOutcome", mock.Anything, userID, "resilient~j", study.Outcome("mastered"), mock.Anything).
			Return(study.UpdatedScore{}, study.ErrInvalidOutcome)

		resp, err := h.status(authCtx, input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid recall outcome")
	})
}

func TestHandler_update(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		level := 3
		input := &updateInput{WID: "resilient~j"}
		input.Body.Level = &level

		svc.On("UpdateDetails", mock.Anything, userID, "resilient~j",
			study.Details{Level: &level}).Return(nil)

		resp, err := h.update(authCtx, input)

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		assert.Equal(t, "resilient~j", resp.Body.WID)
	})

	t.Run("Error_NoStudyRecord", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		note := "n"
		input := &updateInput{WID: "ghost~n"}
		input.Body.Note = &note

		svc.On("UpdateDetails", mock.Anything, userID, "ghost~n", mock.Anything).
			Return(study.ErrNotFound)

		resp, err := h.update(authCtx, input)

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestHandler_listAll(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		candidates := []study.Candidate{
			{Word: word.Word{WID: "abandon~v"}, Group: study.GroupReview, Score: 2.5},
			{Word: word.Word{WID: "zeal~n"}, Group: study.GroupStudy},
		}
		svc.On("ListAll", mock.Anything, userID).Return(candidates, nil)

		resp, err := h.listAll(authCtx, &struct{}{})

		assert.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		assert.Len(t, resp.Body.Words, 2)
	})
}
