// Package careerstats provides repository interface and types for lifetime
// per-character resolution counters. Counters only ever increase; the
// calling layer feeds them from each ActionResult.
package careerstats

import (
	"context"

	"github.com/destinyrpg/destiny-api/internal/entities"
)

// IncrementInput contains the deltas to apply to a character's counters
type IncrementInput struct {
	CharacterID string
	Attempts    int64
	Successes   int64
	XP          int64
	Gold        int64
}

// IncrementOutput contains the counters after the increment
type IncrementOutput struct {
	Stats *entities.CareerStats
}

// GetInput contains parameters for reading a character's counters
type GetInput struct {
	CharacterID string
}

// GetOutput contains a character's counters. Characters with no recorded
// actions read as all zeroes, not NotFound.
type GetOutput struct {
	Stats *entities.CareerStats
}

// Repository defines the interface for career statistics storage operations
type Repository interface {
	// Increment applies deltas to a character's lifetime counters
	Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error)

	// Get reads a character's lifetime counters
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}
