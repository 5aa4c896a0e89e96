package review

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "words-list",
		Method:      http.MethodGet,
		Path:        "/api/words",
		Summary:     "Next words to review",
		Description: "Returns every word due for review ordered by forgetting risk, followed by a bounded page of never-studied words.",
		Tags:        []string{"words"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "words-status",
		Method:      http.MethodPost,
		Path:        "/api/words/status",
		Summary:     "Record a recall outcome",
		Description: "Applies the memory-score update rule for one word and stamps the review time.",
		Tags:        []string{"words"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "words-update",
		Method:      http.MethodPatch,
		Path:        "/api/words/{wid}",
		Summary:     "Edit note or level",
		Tags:        []string{"words"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listAllOp() huma.Operation {
	return huma.Operation{
		OperationID: "words-list-all",
		Method:      http.MethodGet,
		Path:        "/api/words/all",
		Summary:     "Full catalog with learning state",
		Tags:        []string{"words"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
