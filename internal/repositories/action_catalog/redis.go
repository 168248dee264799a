package actioncatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/destinyrpg/destiny-api/internal/entities"
	"github.com/destinyrpg/destiny-api/internal/errors"
	redisclient "github.com/destinyrpg/destiny-api/internal/redis"
)

const (
	// Key pattern: action:{id}, index set: actions
	actionKeyPrefix = "action:"
	actionIndexKey  = "actions"
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

// NewRedisRepository creates a new Redis repository for the action catalog
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

// Create stores a new action definition
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Definition == nil {
		return nil, errors.InvalidArgument("definition cannot be nil")
	}
	if input.Definition.ID == "" {
		return nil, errors.InvalidArgument("action ID cannot be empty")
	}

	definitionJSON, err := json.Marshal(input.Definition)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal action definition")
	}

	key := r.buildKey(input.Definition.ID)
	stored, err := r.client.SetNX(ctx, key, definitionJSON, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store action definition in Redis")
	}
	if !stored {
		return nil, errors.AlreadyExistsf("action %s already exists", input.Definition.ID)
	}

	if err := r.client.SAdd(ctx, actionIndexKey, input.Definition.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index action definition")
	}

	return &CreateOutput{
		Definition: input.Definition,
	}, nil
}

// Get retrieves an action definition by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("action ID cannot be empty")
	}

	definitionJSON, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("action %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get action definition from Redis")
	}

	var definition entities.ActionDefinition
	if err := json.Unmarshal([]byte(definitionJSON), &definition); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal action definition")
	}

	return &GetOutput{
		Definition: &definition,
	}, nil
}

// List returns every definition in the catalog, ordered by ID
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, actionIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list action index")
	}
	sort.Strings(ids)

	definitions := make([]*entities.ActionDefinition, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Index entries without a backing key are skipped rather than
			// failing the whole listing.
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		definitions = append(definitions, out.Definition)
	}

	return &ListOutput{
		Definitions: definitions,
	}, nil
}

// buildKey creates the Redis key for an action definition
func (r *redisRepository) buildKey(id string) string {
	return fmt.Sprintf("%s%s", actionKeyPrefix, id)
}
