// Package actionresult provides repository interface and types for persisted
// action resolution records. Results are write-once: the engine produces an
// immutable record and the repository never updates it.
package actionresult

import (
	"context"

	"github.com/destinyrpg/destiny-api/internal/entities"
)

// CreateInput contains parameters for persisting an action result
type CreateInput struct {
	Result *entities.ActionResult
}

// CreateOutput contains the result of persisting an action result
type CreateOutput struct {
	Result *entities.ActionResult
}

// GetInput contains parameters for retrieving an action result
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving an action result
type GetOutput struct {
	Result *entities.ActionResult
}

// ListByCharacterInput contains parameters for listing a character's recent
// results, newest first
type ListByCharacterInput struct {
	CharacterID string

	// Limit caps the number of results returned; zero means the repository
	// default.
	Limit int64
}

// ListByCharacterOutput contains a character's recent results
type ListByCharacterOutput struct {
	Results []*entities.ActionResult
}

// Repository defines the interface for action result storage operations
type Repository interface {
	// Create persists a new result; AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a result by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByCharacter returns a character's recent results, newest first
	ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error)
}
