package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-rover/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisSortedQueue manages a sorted queue in Redis with TTL support.
type RedisSortedQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.SortedQueue = (*RedisSortedQueue)(nil)

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int) (*RedisSortedQueue, error) {
	queue := &RedisSortedQueue{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue, nil
}

// Enqueue adds a member to the sorted queue with a given score and refreshes the queue's expiration.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	if err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	if rsq.ttl > 0 {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// Latest retrieves up to n members with the highest scores, highest first.
func (rsq *RedisSortedQueue) Latest(ctx context.Context, queueKey string, n int64) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return rsq.client.ZRevRange(ctx, queueKey, 0, n-1).Result()
}

// Trim removes the lowest-scored members so that at most keep remain.
// Concurrent trims of the same queue are serialized with a distributed lock.
func (rsq *RedisSortedQueue) Trim(ctx context.Context, queueKey string, keep int64) error {
	mutex := rsq.locker.NewMutex(queueKey + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	count, err := rsq.client.ZCard(ctx, queueKey).Result()
	if err != nil {
		return err
	}
	if count <= keep {
		return nil
	}

	return rsq.client.ZRemRangeByRank(ctx, queueKey, 0, count-keep-1).Err()
}

// Count returns the number of members in the sorted queue.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) (int64, error) {
	return rsq.client.ZCard(ctx, queueKey).Result()
}
