// Package actioncatalog provides repository interface and types for action
// definitions. The catalog is content: it stores the resolution parameters
// for each action (draw count, suit weights, threshold, reward table), not
// quest narrative.
package actioncatalog

import (
	"context"

	"github.com/destinyrpg/destiny-api/internal/entities"
)

// CreateInput contains parameters for storing an action definition
type CreateInput struct {
	Definition *entities.ActionDefinition
}

// CreateOutput contains the result of storing an action definition
type CreateOutput struct {
	Definition *entities.ActionDefinition
}

// GetInput contains parameters for retrieving an action definition
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving an action definition
type GetOutput struct {
	Definition *entities.ActionDefinition
}

// ListInput contains parameters for listing the catalog
type ListInput struct{}

// ListOutput contains the full catalog
type ListOutput struct {
	Definitions []*entities.ActionDefinition
}

// Repository defines the interface for action catalog storage operations
type Repository interface {
	// Create stores a new action definition; AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an action definition by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every definition in the catalog
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
