package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	dmn "github.com/beka-birhanu/vinom-rover/domain"
	"github.com/beka-birhanu/vinom-rover/rover"
	"github.com/beka-birhanu/vinom-rover/rover/grid"
	"github.com/beka-birhanu/vinom-rover/service/i"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultQueueKey    = "rover:explorations:recent"
	defaultRecentLimit = 50
)

var (
	ErrArchiveDisabled = errors.New("exploration archive is not configured")
	ErrRecentDisabled  = errors.New("recent explorations queue is not configured")
)

// Options configures an ExplorationService.
type Options struct {
	StepFactor  int           // Navigator transition cap multiplier
	QueueKey    string        // Key of the recent explorations queue
	RecentLimit int64         // Members kept in the recent explorations queue
	Repo        i.ReportRepo  // Optional archive
	Queue       i.SortedQueue // Optional recent explorations queue
}

// ExplorationService loads grids, runs the rover and records the results.
type ExplorationService struct {
	navigator *rover.Navigator
	logger    i.Logger
	opts      *Options
	now       func() time.Time
}

// NewExplorationService creates an ExplorationService; nil options disable the archive and queue.
func NewExplorationService(logger i.Logger, opts *Options) (*ExplorationService, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.QueueKey == "" {
		opts.QueueKey = defaultQueueKey
	}

	if opts.RecentLimit <= 0 {
		opts.RecentLimit = defaultRecentLimit
	}

	return &ExplorationService{
		navigator: rover.NewNavigator(&rover.Options{StepFactor: opts.StepFactor}),
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}, nil
}

var _ i.Explorer = (*ExplorationService)(nil)

// Explore loads a grid from src, runs a traversal and records it.
func (es *ExplorationService) Explore(ctx context.Context, src io.Reader) (*dmn.Exploration, error) {
	g, err := grid.Load(src)
	if err != nil {
		es.logger.Warn("Rejected grid", zap.Error(err))
		return nil, err
	}

	report := es.navigator.Run(g)
	exploration := &dmn.Exploration{
		ID:        uuid.New(),
		CreatedAt: es.now().UTC(),
		Columns:   g.Columns(),
		Grid:      g.String(),
		Report:    *report,
	}

	fields := []zap.Field{
		zap.String("id", exploration.ID.String()),
		zap.Int("columns", exploration.Columns),
		zap.Int("moves", report.Summary.MovesTaken),
		zap.Int("grabs", report.Summary.SamplesGrabbed),
		zap.Int("transitions", report.Summary.Transitions),
	}
	if report.Summary.Capped {
		es.logger.Warn("Traversal stopped at transition cap", fields...)
	} else {
		es.logger.Info("Traversal halted", fields...)
	}

	if es.opts.Repo != nil {
		if err := es.opts.Repo.Save(ctx, exploration); err != nil {
			es.logger.Error("Failed to archive exploration", zap.String("id", exploration.ID.String()), zap.Error(err))
			return nil, fmt.Errorf("archiving exploration: %w", err)
		}
	}

	if es.opts.Queue != nil {
		es.pushRecent(ctx, exploration)
	}

	return exploration, nil
}

// pushRecent records the exploration in the recent queue. Failures are logged only.
func (es *ExplorationService) pushRecent(ctx context.Context, exploration *dmn.Exploration) {
	score := float64(exploration.CreatedAt.UnixNano())
	if err := es.opts.Queue.Enqueue(ctx, es.opts.QueueKey, score, exploration.ID.String()); err != nil {
		es.logger.Error("Failed to enqueue exploration", zap.String("id", exploration.ID.String()), zap.Error(err))
		return
	}

	if err := es.opts.Queue.Trim(ctx, es.opts.QueueKey, es.opts.RecentLimit); err != nil {
		es.logger.Error("Failed to trim recent explorations", zap.Error(err))
	}
}

// ByID returns an archived exploration.
func (es *ExplorationService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Exploration, error) {
	if es.opts.Repo == nil {
		return nil, ErrArchiveDisabled
	}
	return es.opts.Repo.ByID(ctx, id)
}

// Recent returns up to n recent exploration IDs, newest first.
func (es *ExplorationService) Recent(ctx context.Context, n int64) ([]uuid.UUID, error) {
	if es.opts.Queue == nil {
		return nil, ErrRecentDisabled
	}

	if n <= 0 || n > es.opts.RecentLimit {
		n = es.opts.RecentLimit
	}

	raw, err := es.opts.Queue.Latest(ctx, es.opts.QueueKey, n)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, member := range raw {
		id, err := uuid.Parse(member)
		if err != nil {
			es.logger.Warn("Skipping malformed queue member", zap.String("member", member))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
