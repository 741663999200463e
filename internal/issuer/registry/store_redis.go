package registry

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisSetKey = "tamga:authorized_issuers"

// Redis backs the registry with a Redis set so multiple server instances
// share one whitelist. Selected when REDIS_URL is configured.
type Redis struct {
	client *redis.Client
}

// NewRedis constructs a Redis-backed registry and seeds the whitelist.
// Seeding uses SADD, so restarts never drop wallets added at runtime.
func NewRedis(ctx context.Context, client *redis.Client, seed []string) (*Redis, error) {
	r := &Redis{client: client}
	if len(seed) > 0 {
		members := make([]any, len(seed))
		for i, w := range seed {
			members[i] = w
		}
		if err := client.SAdd(ctx, redisSetKey, members...).Err(); err != nil {
			return nil, fmt.Errorf("seed issuer registry: %w", err)
		}
	}
	return r, nil
}

func (r *Redis) IsAuthorized(ctx context.Context, wallet string) (bool, error) {
	if wallet == "" {
		return false, nil
	}
	ok, err := r.client.SIsMember(ctx, redisSetKey, wallet).Result()
	if err != nil {
		return false, fmt.Errorf("check issuer membership: %w", err)
	}
	return ok, nil
}

func (r *Redis) Authorize(ctx context.Context, wallet string) error {
	if err := r.client.SAdd(ctx, redisSetKey, wallet).Err(); err != nil {
		return fmt.Errorf("add issuer: %w", err)
	}
	return nil
}

func (r *Redis) List(ctx context.Context) ([]string, error) {
	members, err := r.client.SMembers(ctx, redisSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list issuers: %w", err)
	}
	return members, nil
}
