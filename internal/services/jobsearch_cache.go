package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/justsurfingit/internhunt/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const searchKeyPrefix = "internhunt:search:"

// RedisSearchCache keeps search results for a short TTL. Cache failures are
// logged and treated as misses.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSearchCache {
	return &RedisSearchCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisSearchCache) Get(ctx context.Context, query string) ([]models.JobPosting, bool) {
	data, err := c.client.Get(ctx, searchKeyPrefix+query).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("search cache read failed", zap.String("query", query), zap.Error(err))
		}
		return nil, false
	}

	var jobs []models.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		c.logger.Warn("search cache entry corrupt", zap.String("query", query), zap.Error(err))
		return nil, false
	}
	return jobs, true
}

func (c *RedisSearchCache) Set(ctx context.Context, query string, jobs []models.JobPosting) {
	data, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, searchKeyPrefix+query, data, c.ttl).Err(); err != nil {
		c.logger.Warn("search cache write failed", zap.String("query", query), zap.Error(err))
	}
}
