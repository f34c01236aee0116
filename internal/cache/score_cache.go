package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roommate-service/internal/compat"

	"github.com/redis/go-redis/v9"
)

const scoreKeyPrefix = "compat:"

// ScoreCache memoizes computed pair results in Redis. A result is
// always recomputable from the two profiles and the catalog, so the
// cache is never the source of truth: entries expire on their own and
// are dropped whenever either profile changes.
//
// Keys are direction-sensitive ("compat:<user>:<candidate>") because
// scoring itself is direction-sensitive.
type ScoreCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewScoreCache(rdb *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached result for a pair, or nil on a miss.
func (c *ScoreCache) Get(ctx context.Context, userID, candidateID string) (*compat.Result, error) {
	raw, err := c.rdb.Get(ctx, pairKey(userID, candidateID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result compat.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ScoreCache) Set(ctx context.Context, userID, candidateID string, result compat.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, pairKey(userID, candidateID), raw, c.ttl).Err()
}

// Invalidate drops every cached pair involving the profile, in both
// directions.
func (c *ScoreCache) Invalidate(ctx context.Context, profileID string) error {
	patterns := []string{
		scoreKeyPrefix + profileID + ":*",
		scoreKeyPrefix + "*:" + profileID,
	}
	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
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

func pairKey(userID, candidateID string) string {
	return scoreKeyPrefix + userID + ":" + candidateID
}
