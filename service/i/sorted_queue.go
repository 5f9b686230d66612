package i

import "context"

// SortedQueue is a score-ordered set of members.
type SortedQueue interface {
	// Enqueue adds a member with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// Latest returns up to n members with the highest scores, highest first.
	Latest(ctx context.Context, queueKey string, n int64) ([]string, error)

	// Trim drops the lowest-scored members so at most keep remain.
	Trim(ctx context.Context, queueKey string, keep int64) error
}
