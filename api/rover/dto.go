// Package roverapi exposes rover explorations over HTTP.
package roverapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-rover/domain"
	"github.com/beka-birhanu/vinom-rover/rover"
	"github.com/google/uuid"
)

// ExplorationResponse is the JSON form of an exploration.
type ExplorationResponse struct {
	ID        uuid.UUID    `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Columns   int          `json:"columns"`
	Grid      string       `json:"grid"`
	Report    rover.Report `json:"report"`
	Trace     []string     `json:"trace"`
}

// RecentResponse lists recent exploration IDs, newest first.
type RecentResponse struct {
	IDs []uuid.UUID `json:"ids"`
}

// RecentQuery is the query string of the recent explorations route.
type RecentQuery struct {
	Limit int64 `form:"limit" binding:"omitempty,min=1"`
}

func newExplorationResponse(e *dmn.Exploration) *ExplorationResponse {
	trace := make([]string, 0, len(e.Report.Records)+1)
	for _, r := range e.Report.Records {
		trace = append(trace, r.String())
	}
	trace = append(trace, e.Report.Summary.String())

	return &ExplorationResponse{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Columns:   e.Columns,
		Grid:      e.Grid,
		Report:    e.Report,
		Trace:     trace,
	}
}
