package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// Todo is a row in the todos table; it doubles as the response shape.
type Todo struct {
	ID          int64     `json:"id"`
	UserUUID    uuid.UUID `json:"user_uuid"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

// TodoPatch is the set of fields an update applies; nil fields are left
// unchanged.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Empty reports whether the patch carries no fields at all.
func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

type TodoResponse struct {
	Todo *Todo `json:"todo"`
}

type TodoListResponse struct {
	Todos []Todo `json:"todos"`
}
