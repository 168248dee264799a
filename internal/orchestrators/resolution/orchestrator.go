// Package resolution implements the destiny deck resolution orchestrator.
// Every meaningful player action resolves here: draw a hand, score it,
// apply suit affinities, compare against the action's threshold, and pay
// out rewards. Each call is a self-contained computation over a fresh
// draw; the orchestrator holds no per-call state and is safe for
// concurrent use.
package resolution

import (
	"context"
	"log/slog"

	"github.com/destinyrpg/destiny-api/internal/deck"
	"github.com/destinyrpg/destiny-api/internal/engine"
	"github.com/destinyrpg/destiny-api/internal/entities"
	"github.com/destinyrpg/destiny-api/internal/errors"
	"github.com/destinyrpg/destiny-api/internal/pkg/clock"
	"github.com/destinyrpg/destiny-api/internal/pkg/idgen"
	actioncatalog "github.com/destinyrpg/destiny-api/internal/repositories/action_catalog"
	actionresult "github.com/destinyrpg/destiny-api/internal/repositories/action_result"
	careerstats "github.com/destinyrpg/destiny-api/internal/repositories/career_stats"
)

// Service defines the interface for action resolution operations
type Service interface {
	// ResolveAction draws a hand for a character's action attempt, scores
	// it, persists the result, and feeds career statistics
	ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error)

	// GetActionResult fetches a stored resolution record
	GetActionResult(ctx context.Context, input *GetActionResultInput) (*GetActionResultOutput, error)

	// ListActionResults lists a character's recent resolutions, newest first
	ListActionResults(ctx context.Context, input *ListActionResultsInput) (*ListActionResultsOutput, error)

	// GetCareerStats reads a character's lifetime counters
	GetCareerStats(ctx context.Context, input *GetCareerStatsInput) (*GetCareerStatsOutput, error)

	// ListActions returns the action catalog
	ListActions(ctx context.Context, input *ListActionsInput) (*ListActionsOutput, error)
}

// Config holds the dependencies for the resolution orchestrator
type Config struct {
	ActionCatalogRepo actioncatalog.Repository
	ActionResultRepo  actionresult.Repository
	CareerStatsRepo   careerstats.Repository
	Deck              deck.Deck
	IDGenerator       idgen.Generator
	Clock             clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActionCatalogRepo == nil {
		vb.RequiredField("ActionCatalogRepo")
	}
	if c.ActionResultRepo == nil {
		vb.RequiredField("ActionResultRepo")
	}
	if c.CareerStatsRepo == nil {
		vb.RequiredField("CareerStatsRepo")
	}
	if c.Deck == nil {
		vb.RequiredField("Deck")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo actioncatalog.Repository
	resultRepo  actionresult.Repository
	statsRepo   careerstats.Repository
	deck        deck.Deck
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new resolution orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalogRepo: cfg.ActionCatalogRepo,
		resultRepo:  cfg.ActionResultRepo,
		statsRepo:   cfg.CareerStatsRepo,
		deck:        cfg.Deck,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// ResolveAction is the single resolution path: load definition, draw,
// evaluate, score suits, decide success, calculate rewards, record. Draw
// size is validated before any card is drawn, and internal scoring errors
// surface unchanged; there are no retries and no partial results.
func (o *orchestrator) ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.ActionID == "" {
		return nil, errors.InvalidArgument("action ID is required")
	}

	catalogOut, err := o.catalogRepo.Get(ctx, actioncatalog.GetInput{ID: input.ActionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load action %s", input.ActionID)
	}
	action := catalogOut.Definition

	cards, err := o.deck.Draw(action.CardsToDraw)
	if err != nil {
		return nil, err
	}

	evaluation, err := engine.Evaluate(cards)
	if err != nil {
		slog.Error("Hand evaluation failed on a valid draw",
			"character_id", input.CharacterID,
			"action_id", action.ID,
			"cards_drawn", len(cards),
			"error", err,
		)
		return nil, err
	}

	suitBonuses := engine.ScoreSuits(cards, action.SuitWeights)
	totalScore := evaluation.Score + suitBonuses.Total()
	success := totalScore >= action.Threshold
	margin := totalScore - action.Threshold

	rewards := engine.CalculateReward(success, evaluation.Rank, margin, action.Rewards)

	result := &entities.ActionResult{
		ID:              o.idGen.Generate(),
		CharacterID:     input.CharacterID,
		ActionID:        action.ID,
		CardsDrawn:      cards,
		HandRank:        evaluation.Rank,
		HandScore:       evaluation.Score,
		HandDescription: evaluation.Description,
		SuitBonuses:     suitBonuses,
		TotalScore:      totalScore,
		Success:         success,
		RewardsGained:   rewards,
		CreatedAt:       o.clock.Now(),
	}

	if _, err := o.resultRepo.Create(ctx, actionresult.CreateInput{Result: result}); err != nil {
		return nil, errors.Wrap(err, "failed to persist action result")
	}

	succeeded := int64(0)
	if success {
		succeeded = 1
	}
	if _, err := o.statsRepo.Increment(ctx, careerstats.IncrementInput{
		CharacterID: input.CharacterID,
		Attempts:    1,
		Successes:   succeeded,
		XP:          int64(rewards.XP),
		Gold:        int64(rewards.Gold),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to update career stats")
	}

	slog.Info("Action resolved",
		"character_id", input.CharacterID,
		"action_id", action.ID,
		"result_id", result.ID,
		"hand", result.HandDescription,
		"total_score", result.TotalScore,
		"threshold", action.Threshold,
		"success", result.Success,
	)

	return &ResolveActionOutput{
		Result: result,
	}, nil
}

// GetActionResult fetches a stored resolution record
func (o *orchestrator) GetActionResult(ctx context.Context, input *GetActionResultInput) (*GetActionResultOutput, error) {
	if input.ResultID == "" {
		return nil, errors.InvalidArgument("result ID is required")
	}

	getOut, err := o.resultRepo.Get(ctx, actionresult.GetInput{ID: input.ResultID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get action result")
	}

	return &GetActionResultOutput{
		Result: getOut.Result,
	}, nil
}

// ListActionResults lists a character's recent resolutions
func (o *orchestrator) ListActionResults(ctx context.Context, input *ListActionResultsInput) (*ListActionResultsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	listOut, err := o.resultRepo.ListByCharacter(ctx, actionresult.ListByCharacterInput{
		CharacterID: input.CharacterID,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list action results")
	}

	return &ListActionResultsOutput{
		Results: listOut.Results,
	}, nil
}

// GetCareerStats reads a character's lifetime counters
func (o *orchestrator) GetCareerStats(ctx context.Context, input *GetCareerStatsInput) (*GetCareerStatsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOut, err := o.statsRepo.Get(ctx, careerstats.GetInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get career stats")
	}

	return &GetCareerStatsOutput{
		Stats: getOut.Stats,
	}, nil
}

// ListActions returns the action catalog
func (o *orchestrator) ListActions(ctx context.Context, _ *ListActionsInput) (*ListActionsOutput, error) {
	listOut, err := o.catalogRepo.List(ctx, actioncatalog.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actions")
	}

	return &ListActionsOutput{
		Actions: listOut.Definitions,
	}, nil
}
