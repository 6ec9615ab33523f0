package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type redisEntry struct {
	value string
	ttl   time.Duration
}

// fakeRedis keeps values in a map, failing every call when broken is set.
type fakeRedis struct {
	data   map[string]redisEntry
	broken bool
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.broken {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	f.data[key] = redisEntry{value: value.(string), ttl: expiration}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.broken {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	e, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(e.value, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.broken {
		return redis.NewIntResult(0, errors.New("connection refused"))
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRefreshTokensRepository(t *testing.T) {
	rdb := &fakeRedis{data: map[string]redisEntry{}}
	repo := repository.NewRefreshTokensRepo(rdb)
	memberID := uuid.New()
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, memberID, "jti-1", time.Hour))
		assert.Equal(t, time.Hour, rdb.data["refresh_token:"+memberID.String()].ttl)
		tokenID, err := repo.Get(ctx, memberID)
		assert.NoError(t, err)
		assert.Equal(t, "jti-1", tokenID)
	})
	t.Run("rotation overwrites", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, memberID, "jti-2", time.Hour))
		tokenID, err := repo.Get(ctx, memberID)
		assert.NoError(t, err)
		assert.Equal(t, "jti-2", tokenID)
	})
	t.Run("revoked", func(t *testing.T) {
		assert.NoError(t, repo.Revoke(ctx, memberID))
		_, err := repo.Get(ctx, memberID)
		assert.ErrorIs(t, err, errorvalues.ErrTokenRevoked)
	})
	t.Run("redis down", func(t *testing.T) {
		rdb.broken = true
		assert.EqualError(t, repo.Save(ctx, memberID, "jti-3", time.Hour), "storing refresh token error: connection refused")
		_, err := repo.Get(ctx, memberID)
		assert.EqualError(t, err, "reading refresh token error: connection refused")
		assert.Error(t, repo.Revoke(ctx, memberID))
	})
}
