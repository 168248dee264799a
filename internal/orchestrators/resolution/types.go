package resolution

import (
	"github.com/destinyrpg/destiny-api/internal/entities"
)

// ResolveActionInput defines the request for resolving an action
type ResolveActionInput struct {
	CharacterID string
	ActionID    string
}

// ResolveActionOutput defines the response for resolving an action
type ResolveActionOutput struct {
	Result *entities.ActionResult
}

// GetActionResultInput defines the request for fetching a stored result
type GetActionResultInput struct {
	ResultID string
}

// GetActionResultOutput defines the response for fetching a stored result
type GetActionResultOutput struct {
	Result *entities.ActionResult
}

// ListActionResultsInput defines the request for a character's recent results
type ListActionResultsInput struct {
	CharacterID string
	Limit       int64
}

// ListActionResultsOutput defines the response with recent results, newest
// first
type ListActionResultsOutput struct {
	Results []*entities.ActionResult
}

// GetCareerStatsInput defines the request for a character's lifetime counters
type GetCareerStatsInput struct {
	CharacterID string
}

// GetCareerStatsOutput defines the response with lifetime counters
type GetCareerStatsOutput struct {
	Stats *entities.CareerStats
}

// ListActionsInput defines the request for the action catalog
type ListActionsInput struct{}

// ListActionsOutput defines the response with the full catalog
type ListActionsOutput struct {
	Actions []*entities.ActionDefinition
}
