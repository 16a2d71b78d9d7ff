package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/rs/zerolog/log"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard shares busy flags between instances with SETNX and a TTL.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(addr, password string, db int, ttl time.Duration) (*RedisGuard, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Str("addr", addr).Msg("Redis connection established")
	return NewRedisGuardFromClient(client, ttl), nil
}

func NewRedisGuardFromClient(client *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultBusyTTL
	}
	return &RedisGuard{client: client, ttl: ttl}
}

func (g *RedisGuard) Close() error {
	return g.client.Close()
}

func (g *RedisGuard) Acquire(ctx context.Context, sessionID string) (string, bool, error) {
	token := newToken()
	acquired, err := g.client.SetNX(ctx, BusyKey(sessionID), token, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to set busy flag: %w", err)
	}
	if !acquired {
		return "", false, nil
	}
	return token, true, nil
}

// Release deletes the flag only while it still holds token, so a query that
// outlived its TTL cannot clear a newer query's flag.
func (g *RedisGuard) Release(ctx context.Context, sessionID, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{BusyKey(sessionID)}, token).Err(); err != nil {
		return fmt.Errorf("failed to clear busy flag: %w", err)
	}
	return nil
}

var _ Guard = (*RedisGuard)(nil)
