package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"persona-engine/internal/domain"
)

type redisResultCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisResultCache builds a TTL'd cache over stored assessment
// records. A nil client returns a nil cache, which callers treat as
// caching disabled. Redis failures fail open: the repository is the
// source of truth.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisResultCache{
		client: client,
		ttl:    ttl,
		prefix: "assessment:",
	}
}

func (c *redisResultCache) Get(ctx context.Context, id string) (domain.AssessmentRecord, bool) {
	if c == nil || c.client == nil || id == "" {
		return domain.AssessmentRecord{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+id).Bytes()
	if err != nil {
		return domain.AssessmentRecord{}, false
	}
	var rec domain.AssessmentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.AssessmentRecord{}, false
	}
	return rec, true
}

func (c *redisResultCache) Set(ctx context.Context, rec domain.AssessmentRecord) {
	if c == nil || c.client == nil || rec.ID == "" {
		return
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	_ = c.client.Set(ctx, c.prefix+rec.ID, raw, c.ttl).Err()
}
