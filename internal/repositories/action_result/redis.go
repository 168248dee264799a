package actionresult

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/destinyrpg/destiny-api/internal/entities"
	"github.com/destinyrpg/destiny-api/internal/errors"
	redisclient "github.com/destinyrpg/destiny-api/internal/redis"
)

const (
	// Key patterns: action_result:{id}, history list:
	// action_result:character:{character_id}
	resultKeyPrefix  = "action_result:"
	historyKeyPrefix = "action_result:character:"

	// History lists are trimmed to this many entries; lifetime totals live
	// in career stats, not here.
	defaultHistoryLimit = 100
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client

	// HistoryLimit overrides the per-character history length; zero keeps
	// the default.
	HistoryLimit int64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client       redisclient.Client
	historyLimit int64
}

// NewRedisRepository creates a new Redis repository for action results
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	return &redisRepository{
		client:       cfg.Client,
		historyLimit: limit,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create persists a new action result and prepends it to the character's
// history list
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Result == nil {
		return nil, errors.InvalidArgument("result cannot be nil")
	}
	if input.Result.ID == "" {
		return nil, errors.InvalidArgument("result ID cannot be empty")
	}
	if input.Result.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal action result")
	}

	key := r.buildResultKey(input.Result.ID)
	stored, err := r.client.SetNX(ctx, key, resultJSON, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store action result in Redis")
	}
	if !stored {
		return nil, errors.AlreadyExistsf("action result %s already exists", input.Result.ID)
	}

	historyKey := r.buildHistoryKey(input.Result.CharacterID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, historyKey, input.Result.ID)
	pipe.LTrim(ctx, historyKey, 0, r.historyLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character history")
	}

	return &CreateOutput{
		Result: input.Result,
	}, nil
}

// Get retrieves an action result by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("result ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, r.buildResultKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("action result %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get action result from Redis")
	}

	var result entities.ActionResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal action result")
	}

	return &GetOutput{
		Result: &result,
	}, nil
}

// ListByCharacter returns a character's recent results, newest first
func (r *redisRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 || limit > r.historyLimit {
		limit = r.historyLimit
	}

	ids, err := r.client.LRange(ctx, r.buildHistoryKey(input.CharacterID), 0, limit-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character history")
	}

	results := make([]*entities.ActionResult, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A trimmed or expired record leaves a dangling history entry;
			// skip it.
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		results = append(results, out.Result)
	}

	return &ListByCharacterOutput{
		Results: results,
	}, nil
}

// buildResultKey creates the Redis key for an action result
func (r *redisRepository) buildResultKey(id string) string {
	return fmt.Sprintf("%s%s", resultKeyPrefix, id)
}

// buildHistoryKey creates the Redis key for a character's history list
func (r *redisRepository) buildHistoryKey(characterID string) string {
	return fmt.Sprintf("%s%s", historyKeyPrefix, characterID)
}
