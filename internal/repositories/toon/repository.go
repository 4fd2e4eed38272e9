// Package toon provides the interface for toon persistence
package toon

//go:generate mockgen -destination=mock/mock_repository.go -package=toonmock github.com/LittlestCube/toontown-archipelago/internal/repositories/toon Repository

import (
	"context"

	toonentity "github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
)

// Repository defines the interface for toon persistence
type Repository interface {
	// Create stores a new toon
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a toon with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a toon by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the toon doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing toon
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the toon doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a toon by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the toon doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a toon
type CreateInput struct {
	Toon *toonentity.Toon
}

// CreateOutput defines the output for creating a toon
type CreateOutput struct {
	Toon *toonentity.Toon
}

// GetInput defines the input for getting a toon
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a toon
type GetOutput struct {
	Toon *toonentity.Toon
}

// UpdateInput defines the input for updating a toon
type UpdateInput struct {
	Toon *toonentity.Toon
}

// UpdateOutput defines the output for updating a toon
type UpdateOutput struct {
	Toon *toonentity.Toon
}

// DeleteInput defines the input for deleting a toon
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a toon
type DeleteOutput struct{}
