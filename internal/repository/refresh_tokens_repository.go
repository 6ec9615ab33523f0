package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/cleanup"
	"github.com/redis/go-redis/v9"
)

// RedisCmdable is the part of the go-redis client the token store needs.
type RedisCmdable interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// NewRedisClient connects to redis and registers closing the client on cleanup.
func NewRedisClient(cfg RedisCfg) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	return rdb
}

type RefreshTokensRepository struct {
	rdb RedisCmdable
}

func NewRefreshTokensRepo(rdb RedisCmdable) *RefreshTokensRepository {
	return &RefreshTokensRepository{
		rdb: rdb,
	}
}

func refreshTokenKey(memberID uuid.UUID) string {
	return "refresh_token:" + memberID.String()
}

func (rr *RefreshTokensRepository) Save(ctx context.Context, memberID uuid.UUID, tokenID string, ttl time.Duration) error {
	if err := rr.rdb.Set(ctx, refreshTokenKey(memberID), tokenID, ttl).Err(); err != nil {
		return errors.New("storing refresh token error: " + err.Error())
	}
	return nil
}

func (rr *RefreshTokensRepository) Get(ctx context.Context, memberID uuid.UUID) (string, error) {
	tokenID, err := rr.rdb.Get(ctx, refreshTokenKey(memberID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorvalues.ErrTokenRevoked
		}
		return "", errors.New("reading refresh token error: " + err.Error())
	}
	return tokenID, nil
}

func (rr *RefreshTokensRepository) Revoke(ctx context.Context, memberID uuid.UUID) error {
	if err := rr.rdb.Del(ctx, refreshTokenKey(memberID)).Err(); err != nil {
		return errors.New("revoking refresh token error: " + err.Error())
	}
	return nil
}
