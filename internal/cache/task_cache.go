package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	dom "taskboard/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keySnapshot = "task:snap:"
	keySearch   = "task:search:"
)

// TaskCache caches per-user task snapshots and search results in
// Redis. The query and analytics engines recompute everything else
// from the snapshot, so these are the only two shapes worth caching.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

// SnapshotKey builds the cache key for one snapshot scope: a whole
// user, or a user narrowed to one list.
func SnapshotKey(ownerID int64, listID *int64) string {
	key := keySnapshot + strconv.FormatInt(ownerID, 10)
	if listID != nil {
		key += ":list:" + strconv.FormatInt(*listID, 10)
	}
	return key
}

// GetSnapshot returns the cached snapshot for the scope, or nil on a
// miss.
func (c *TaskCache) GetSnapshot(ctx context.Context, ownerID int64, listID *int64) ([]dom.Task, error) {
	return c.getTasks(ctx, SnapshotKey(ownerID, listID))
}

// SetSnapshot stores the snapshot for the scope.
func (c *TaskCache) SetSnapshot(ctx context.Context, ownerID int64, listID *int64, tasks []dom.Task) error {
	return c.setTasks(ctx, SnapshotKey(ownerID, listID), tasks)
}

// GetSearch returns the cached search result for query q, or nil on a
// miss.
func (c *TaskCache) GetSearch(ctx context.Context, ownerID int64, q string) ([]dom.Task, error) {
	return c.getTasks(ctx, searchKey(ownerID, q))
}

// SetSearch stores the search result.
func (c *TaskCache) SetSearch(ctx context.Context, ownerID int64, q string, tasks []dom.Task) error {
	return c.setTasks(ctx, searchKey(ownerID, q), tasks)
}

// InvalidateOwner removes every cached shape for one user: the whole
// snapshot, all per-list snapshots and all search results. Called on
// any write to the user's tasks or lists.
func (c *TaskCache) InvalidateOwner(ctx context.Context, ownerID int64) error {
	owner := strconv.FormatInt(ownerID, 10)
	if err := c.rdb.Del(ctx, keySnapshot+owner).Err(); err != nil {
		return err
	}
	for _, pattern := range []string{keySnapshot + owner + ":*", keySearch + owner + ":*"} {
		iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (c *TaskCache) getTasks(ctx context.Context, key string) ([]dom.Task, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *TaskCache) setTasks(ctx context.Context, key string, tasks []dom.Task) error {
	b, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func searchKey(ownerID int64, q string) string {
	return keySearch + strconv.FormatInt(ownerID, 10) + ":" + strings.TrimSpace(strings.ToLower(q))
}
