package applied

import (
	"context"
	"strconv"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	redisclient "github.com/LittlestCube/toontown-archipelago/internal/redis"
)

const appliedKeyPrefix = "applied:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis applied repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("client")
	}
	return vb.Build()
}

// NewRedis creates a guard backed by one Redis set per avatar. SADD reports
// whether the member was new, which makes the check-and-record atomic on the
// server.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

func appliedKey(avatarID string) string {
	return appliedKeyPrefix + avatarID
}

func (r *redisRepository) TryMarkApplied(ctx context.Context, input TryMarkAppliedInput) (*TryMarkAppliedOutput, error) {
	if err := validateKey(input.AvatarID, input.SequenceIndex); err != nil {
		return nil, err
	}

	added, err := r.client.SAdd(ctx, appliedKey(input.AvatarID), strconv.FormatInt(input.SequenceIndex, 10)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mark envelope %d for avatar %s", input.SequenceIndex, input.AvatarID)
	}

	return &TryMarkAppliedOutput{Marked: added == 1}, nil
}

func (r *redisRepository) Unmark(ctx context.Context, input UnmarkInput) (*UnmarkOutput, error) {
	if err := validateKey(input.AvatarID, input.SequenceIndex); err != nil {
		return nil, err
	}

	err := r.client.SRem(ctx, appliedKey(input.AvatarID), strconv.FormatInt(input.SequenceIndex, 10)).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmark envelope %d for avatar %s", input.SequenceIndex, input.AvatarID)
	}

	return &UnmarkOutput{}, nil
}
