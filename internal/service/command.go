// Package service provides command business logic: required-field validation,
// the ownership predicate, and CRUD delegation to a CommandRepository.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/atinyakov/CmdKeeper/internal/models"
	"github.com/google/uuid"
)

// CommandRepository defines the persistence operations needed by the CommandService.
type CommandRepository interface {
	// ListByOwner retrieves all commands belonging to the specified owner.
	ListByOwner(ctx context.Context, owner string) ([]models.Command, error)
	// ListByOwnerAndCategory retrieves the owner's commands with an
	// exact-match category.
	ListByOwnerAndCategory(ctx context.Context, owner, category string) ([]models.Command, error)
	// Create persists a new command record.
	Create(ctx context.Context, cmd models.Command) error
	// Delete removes the command with the given id if it belongs to owner.
	// Returns false when no matching record was deleted.
	Delete(ctx context.Context, owner, id string) (bool, error)
}

// CommandService implements command management scoped to an owning user.
// Every operation applies the ownership predicate before touching the
// repository, so no handler can forget the owner filter.
type CommandService struct {
	// repo is the underlying persistence repository.
	repo CommandRepository
}

// NewCommandService constructs a CommandService with the provided CommandRepository.
func NewCommandService(repo CommandRepository) *CommandService {
	return &CommandService{repo: repo}
}

// requireOwner is the single authorization predicate: every operation must
// carry a non-empty caller identity.
func requireOwner(owner string) error {
	if owner == "" {
		return fmt.Errorf("%w: missing caller identity", ErrValidation)
	}
	return nil
}

// List returns every command owned by the caller. The result is never nil,
// so an empty set serializes as an empty JSON array.
func (s *CommandService) List(ctx context.Context, owner string) ([]models.Command, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	commands, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if commands == nil {
		commands = []models.Command{}
	}
	return commands, nil
}

// ListByCategory returns the caller's commands whose category string-equals
// the given value (case-sensitive). An empty result is not an error.
func (s *CommandService) ListByCategory(ctx context.Context, owner, category string) ([]models.Command, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	commands, err := s.repo.ListByOwnerAndCategory(ctx, owner, category)
	if err != nil {
		return nil, err
	}
	if commands == nil {
		commands = []models.Command{}
	}
	return commands, nil
}

// Create validates the required fields, stamps owner, id, and creation time,
// persists the record, and returns it. The owner always comes from the
// authenticated caller; nothing client-supplied can override it.
func (s *CommandService) Create(ctx context.Context, owner, title, command, category string) (*models.Command, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if title == "" || command == "" || category == "" {
		return nil, fmt.Errorf("%w: title, command and category are required", ErrValidation)
	}

	cmd := models.Command{
		ID:        uuid.NewString(),
		Title:     title,
		Command:   command,
		Category:  category,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd, nil
}

// Delete removes the caller's command with the given id. A missing id and an
// id owned by another user both yield ErrNotFound.
func (s *CommandService) Delete(ctx context.Context, owner, id string) error {
	if err := requireOwner(owner); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, owner, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
