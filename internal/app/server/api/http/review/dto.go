package review

import (
	"time"

	"wordmem/internal/domain/study"
)

type listInput struct {
	Limit    int       `query:"limit" default:"20" minimum:"1" maximum:"500" doc:"Page size for never-studied words"`
	Offset   int       `query:"offset" default:"0" minimum:"0" doc:"Page offset for never-studied words"`
	TestDate time.Time `query:"test_date" required:"false" doc:"Reference instant for decay metrics, RFC3339; defaults to now"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Status string            `json:"status"`
	Words  []study.Candidate `json:"words"`
	Error  string            `json:"error,omitempty"`
}

type statusInput struct {
	Body statusRequest
}

type statusRequest struct {
	WID    string        `json:"wid" minLength:"1" doc:"Catalog word identifier"`
	Status study.Outcome `json:"status" doc:"Recall outcome, one of known, unfamiliar, forgotten"`
	Note   *string       `json:"note,omitempty" doc:"Optional learner note to store alongside"`
	Level  *int          `json:"level,omitempty" minimum:"0" doc:"Optional manual familiarity level"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
	study.UpdatedScore
	Error string `json:"error,omitempty"`
}

type updateInput struct {
	WID  string `path:"wid" example:"resilient~j" doc:"Catalog word identifier"`
	Body updateRequest
}

type updateRequest struct {
	Note  *string `json:"note,omitempty"`
	Level *int    `json:"level,omitempty" minimum:"0"`
}

type updateOutput struct {
	Body updateResponse
}

type updateResponse struct {
	Status string `json:"status"`
	WID    string `json:"wid"`
	Error  string `json:"error,omitempty"`
}
