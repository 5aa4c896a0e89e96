package review

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"wordmem/internal/app/server/api/http/middleware/auth"
	"wordmem/internal/domain/study"
)

type Handler struct {
	service    study.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service study.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.listAllOp(), h.listAll)
	huma.Register(api, h.statusOp(), h.status)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	at := input.TestDate
	if at.IsZero() {
		at = time.Now()
	}

	words, err := h.service.Rank(ctx, userID, input.Limit, input.Offset, at)
	if err != nil {
		return &listOutput{
			Body: listResponse{Status: "Error"},
		}, err
	}

	return &listOutput{
		Body: listResponse{
			Status: "Ok",
			Words:  words,
		},
	}, nil
}

func (h *Handler) listAll(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	words, err := h.service.ListAll(ctx, userID)
	if err != nil {
		return &listOutput{
			Body: listResponse{Status: "Error"},
		}, err
	}

	return &listOutput{
		Body: listResponse{
			Status: "Ok",
			Words:  words,
		},
	}, nil
}

func (h *Handler) status(ctx context.Context, input *statusInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	updated, err := h.service.RecordOutcome(ctx, userID, input.Body.WID, input.Body.Status, time.Now())
	if err != nil {
		if errors.Is(err, study.ErrInvalidOutcome) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return &statusOutput{
			Body: statusResponse{Status: "Error"},
		}, err
	}

	details := study.Details{Note: input.Body.Note, Level: input.Body.Level}
	if !details.Empty() {
		if err := h.service.UpdateDetails(ctx, userID, input.Body.WID, details); err != nil {
			h.log.Error("update details after outcome", "wid", input.Body.WID, "error", err)
		}
	}

	return &statusOutput{
		Body: statusResponse{
			Status:       "Ok",
			UpdatedScore: updated,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	details := study.Details{Note: input.Body.Note, Level: input.Body.Level}
	err := h.service.UpdateDetails(ctx, userID, input.WID, details)
	if err != nil {
		if errors.Is(err, study.ErrNotFound) {
			return nil, huma.Error404NotFound("word has no study record")
		}
		return &updateOutput{
			Body: updateResponse{Status: "Error", WID: input.WID},
		}, err
	}

	return &updateOutput{
		Body: updateResponse{
			Status: "Ok",
			WID:    input.WID,
		},
	}, nil
}
