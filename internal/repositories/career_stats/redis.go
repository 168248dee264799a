package careerstats

import (
	"context"
	"fmt"
	"strconv"

	"github.com/destinyrpg/destiny-api/internal/entities"
	"github.com/destinyrpg/destiny-api/internal/errors"
	redisclient "github.com/destinyrpg/destiny-api/internal/redis"
)

const (
	// Key pattern: career_stats:{character_id}, one hash per character
	statsKeyPrefix = "career_stats:"

	fieldAttempts  = "actions_attempted"
	fieldSuccesses = "actions_succeeded"
	fieldXP        = "xp_earned"
	fieldGold      = "gold_earned"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for career statistics
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Increment applies deltas to a character's counters in a single pipeline
func (r *redisRepository) Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Attempts < 0 || input.Successes < 0 || input.XP < 0 || input.Gold < 0 {
		return nil, errors.InvalidArgument("counter deltas cannot be negative")
	}

	key := r.buildKey(input.CharacterID)

	pipe := r.client.TxPipeline()
	attempts := pipe.HIncrBy(ctx, key, fieldAttempts, input.Attempts)
	successes := pipe.HIncrBy(ctx, key, fieldSuccesses, input.Successes)
	xp := pipe.HIncrBy(ctx, key, fieldXP, input.XP)
	gold := pipe.HIncrBy(ctx, key, fieldGold, input.Gold)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to increment career stats")
	}

	return &IncrementOutput{
		Stats: &entities.CareerStats{
			CharacterID:      input.CharacterID,
			ActionsAttempted: attempts.Val(),
			ActionsSucceeded: successes.Val(),
			XPEarned:         xp.Val(),
			GoldEarned:       gold.Val(),
		},
	}, nil
}

// Get reads a character's counters; an absent hash reads as all zeroes
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, r.buildKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read career stats")
	}

	stats := &entities.CareerStats{CharacterID: input.CharacterID}
	stats.ActionsAttempted = parseCounter(fields[fieldAttempts])
	stats.ActionsSucceeded = parseCounter(fields[fieldSuccesses])
	stats.XPEarned = parseCounter(fields[fieldXP])
	stats.GoldEarned = parseCounter(fields[fieldGold])

	return &GetOutput{
		Stats: stats,
	}, nil
}

func parseCounter(value string) int64 {
	if value == "" {
		return 0
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// buildKey creates the Redis key for a character's stats hash
func (r *redisRepository) buildKey(characterID string) string {
	return fmt.Sprintf("%s%s", statsKeyPrefix, characterID)
}
