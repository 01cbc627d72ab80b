package snapshot

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-table/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-table/internal/redis"
)

const keyPrefix = "snapshot:"

// RedisConfig contains configuration for the Redis snapshot repository
type RedisConfig struct {
	Client redisclient.Client
	// Name identifies the collection, e.g. "profiles"
	Name string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Name == "" {
		return errors.InvalidArgument("name cannot be empty")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	key    string
}

// NewRedis creates a Redis-backed snapshot repository. The document lives
// under a single key; SET replaces it atomically.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		key:    keyPrefix + cfg.Name,
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{}, nil
		}
		return nil, storageError(err, "failed to get snapshot from Redis").WithMeta("key", r.key)
	}

	return &LoadOutput{Data: data}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := r.client.Set(ctx, r.key, input.Data, 0).Err(); err != nil {
		return nil, storageError(err, "failed to store snapshot in Redis").WithMeta("key", r.key)
	}

	return &SaveOutput{BytesWritten: len(input.Data)}, nil
}
