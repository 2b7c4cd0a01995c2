package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/todoboard/backend/internal/errs"
	"github.com/todoboard/backend/internal/model"
)

// TodoRepository is the storage surface the todo service needs.
type TodoRepository interface {
	InsertTodo(ctx context.Context, ownerUUID uuid.UUID, title string, description *string) (*model.Todo, error)
	ListTodosByOwner(ctx context.Context, ownerUUID uuid.UUID) ([]model.Todo, error)
	GetTodoByID(ctx context.Context, id int64) (*model.Todo, error)
	UpdateTodo(ctx context.Context, id int64, ownerUUID uuid.UUID, patch model.TodoPatch) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id int64, ownerUUID uuid.UUID) error
}

type TodoService struct {
	repo TodoRepository
}

func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// Create inserts a new incomplete item. The owner always comes from the
// caller's verified token claims, never from the request body.
func (s *TodoService) Create(ctx context.Context, ownerUUID uuid.UUID, title string, description *string) (*model.Todo, error) {
	if strings.TrimSpace(title) == "" || len(title) > model.MaxTitleLength {
		return nil, errs.ErrInvalidInput
	}
	if description != nil && len(*description) > model.MaxDescriptionLength {
		return nil, errs.ErrInvalidInput
	}

	return s.repo.InsertTodo(ctx, ownerUUID, title, description)
}

// List returns the caller's items, newest first.
func (s *TodoService) List(ctx context.Context, ownerUUID uuid.UUID) ([]model.Todo, error) {
	return s.repo.ListTodosByOwner(ctx, ownerUUID)
}

// Update applies the patch to an item the caller owns. The lookup runs
// before the write so a missing item reports ErrNotFound while someone
// else's item reports ErrForbidden. An empty patch also reports ErrNotFound,
// mirroring a write that matches zero rows.
func (s *TodoService) Update(ctx context.Context, ownerUUID uuid.UUID, id int64, patch model.TodoPatch) (*model.Todo, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetTodoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserUUID != ownerUUID {
		return nil, errs.ErrForbidden
	}
	if patch.Empty() {
		return nil, errs.ErrNotFound
	}

	return s.repo.UpdateTodo(ctx, id, ownerUUID, patch)
}

// Delete removes an item the caller owns, with the same lookup-then-check
// protocol as Update.
func (s *TodoService) Delete(ctx context.Context, ownerUUID uuid.UUID, id int64) error {
	existing, err := s.repo.GetTodoByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserUUID != ownerUUID {
		return errs.ErrForbidden
	}

	return s.repo.DeleteTodo(ctx, id, ownerUUID)
}

func validatePatch(patch model.TodoPatch) error {
	if patch.Title != nil && (strings.TrimSpace(*patch.Title) == "" || len(*patch.Title) > model.MaxTitleLength) {
		return errs.ErrInvalidInput
	}
	if patch.Description != nil && len(*patch.Description) > model.MaxDescriptionLength {
		return errs.ErrInvalidInput
	}
	return nil
}
