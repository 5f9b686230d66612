package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/vinom-rover/domain"
	"github.com/google/uuid"
)

var ErrExplorationNotFound = errors.New("exploration not found")

// ReportRepo defines the interface for exploration archive operations.
type ReportRepo interface {
	// Save inserts or replaces an exploration in the archive.
	Save(ctx context.Context, exploration *dmn.Exploration) error

	// ByID retrieves an exploration by its unique ID.
	// Returns ErrExplorationNotFound if it is not archived.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Exploration, error)
}
