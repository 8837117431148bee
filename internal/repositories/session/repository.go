// Package session provides the repository interface and redis
// implementation for combat session storage
package session

import (
	"context"

	"github.com/duelhall/encounter-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/duelhall/encounter-api/internal/repositories/session Repository

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *entities.Session
}

// SaveInput contains parameters for persisting a session
type SaveInput struct {
	Session *entities.Session
}

// SaveOutput contains the result of persisting a session
type SaveOutput struct{}

// Repository defines the interface for session storage operations.
// Save persists the complete snapshot and must appear atomic to readers;
// sessions are never deleted, only driven to a combat-over state.
type Repository interface {
	// Get retrieves a session by id; NotFound if absent
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists the full session snapshot, overwriting prior state
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}
