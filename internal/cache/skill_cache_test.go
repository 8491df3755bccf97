package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasir9967/skillbazaar/internal/cache"
	"github.com/nasir9967/skillbazaar/internal/domain"
)

func TestSkillCacheRoundTrip(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewSkillCache(rdb, time.Minute)
	ctx := context.Background()

	skills := []domain.Skill{{ID: "s1", Title: "Plumbing", Price: 500}}
	raw, err := json.Marshal(skills)
	require.NoError(t, err)

	mock.ExpectSet("skills:latest", raw, time.Minute).SetVal("OK")
	require.NoError(t, c.SetLatest(ctx, skills))

	mock.ExpectGet("skills:latest").SetVal(string(raw))
	got, ok := c.GetLatest(ctx)
	assert.True(t, ok)
	assert.Equal(t, skills, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillCacheMissIsSoft(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewSkillCache(rdb, time.Minute)

	mock.ExpectGet("skills:latest").RedisNil()
	got, ok := c.GetLatest(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillCacheInvalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewSkillCache(rdb, time.Minute)

	mock.ExpectDel("skills:latest").SetVal(1)
	require.NoError(t, c.Invalidate(context.Background()))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillCacheCorruptPayload(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewSkillCache(rdb, time.Minute)

	mock.ExpectGet("skills:latest").SetVal("{not json")
	_, ok := c.GetLatest(context.Background())
	assert.False(t, ok)
}
