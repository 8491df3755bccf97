package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nasir9967/skillbazaar/internal/domain"
)

const latestKey = "skills:latest"

// SkillCache keeps the public listing page out of the database between
// writes. Failures are soft: callers fall through to the store.
type SkillCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSkillCache(rdb *redis.Client, ttl time.Duration) *SkillCache {
	return &SkillCache{rdb: rdb, ttl: ttl}
}

func (c *SkillCache) GetLatest(ctx context.Context) ([]domain.Skill, bool) {
	raw, err := c.rdb.Get(ctx, latestKey).Bytes()
	if err != nil {
		return nil, false
	}
	var skills []domain.Skill
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, false
	}
	return skills, true
}

func (c *SkillCache) SetLatest(ctx context.Context, skills []domain.Skill) error {
	raw, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, latestKey, raw, c.ttl).Err()
}

func (c *SkillCache) Invalidate(ctx context.Context) error {
	err := c.rdb.Del(ctx, latestKey).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
