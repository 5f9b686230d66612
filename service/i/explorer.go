package i

import (
	"context"
	"io"

	dmn "github.com/beka-birhanu/vinom-rover/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Explorer runs rover traversals and reads back past ones.
type Explorer interface {
	// Explore loads a grid from src and runs a full traversal over it.
	Explore(ctx context.Context, src io.Reader) (*dmn.Exploration, error)

	// ByID returns an archived exploration.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Exploration, error)

	// Recent returns the IDs of up to n recent explorations, newest first.
	Recent(ctx context.Context, n int64) ([]uuid.UUID, error)
}

// Logger is the structured logger used by services.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}
