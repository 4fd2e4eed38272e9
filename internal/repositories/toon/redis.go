package toon

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	toonentity "github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	redisclient "github.com/LittlestCube/toontown-archipelago/internal/redis"
)

const (
	toonKeyPrefix = "toon:"

	// Error messages
	errToonNil     = "toon cannot be nil"
	errToonIDEmpty = "toon ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis toon repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed toon repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func validateToon(t *toonentity.Toon) error {
	if t == nil {
		return errors.InvalidArgument(errToonNil)
	}
	if t.ID == "" {
		return errors.InvalidArgument(errToonIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateToon(input.Toon); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Toon)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal toon")
	}

	// SETNX keeps two concurrent creates from both succeeding
	created, err := r.client.SetNX(ctx, toonKeyPrefix+input.Toon.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create toon")
	}
	if !created {
		return nil, errors.AlreadyExistsf("toon with ID %s already exists", input.Toon.ID)
	}

	return &CreateOutput{Toon: input.Toon}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errToonIDEmpty)
	}

	result, err := r.client.Get(ctx, toonKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("toon with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get toon")
	}

	var t toonentity.Toon
	if err := json.Unmarshal([]byte(result), &t); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal toon data")
	}

	return &GetOutput{Toon: &t}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateToon(input.Toon); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Toon)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal toon")
	}

	// XX only writes over an existing key
	updated, err := r.client.SetXX(ctx, toonKeyPrefix+input.Toon.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update toon")
	}
	if !updated {
		return nil, errors.NotFoundf("toon with ID %s not found", input.Toon.ID)
	}

	return &UpdateOutput{Toon: input.Toon}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errToonIDEmpty)
	}

	removed, err := r.client.Del(ctx, toonKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete toon")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("toon with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
