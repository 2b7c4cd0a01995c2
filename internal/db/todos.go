package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/todoboard/backend/internal/errs"
	"github.com/todoboard/backend/internal/model"
)

const todoColumns = "id, user_uuid, title, description, completed, created_at, updated_at"

func scanTodo(row pgx.Row) (*model.Todo, error) {
	var t model.Todo
	err := row.Scan(
		&t.ID,
		&t.UserUUID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *Postgres) InsertTodo(ctx context.Context, ownerUUID uuid.UUID, title string, description *string) (*model.Todo, error) {
	query := `
		INSERT INTO todos (user_uuid, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + todoColumns

	return scanTodo(db.Pool.QueryRow(ctx, query, ownerUUID, title, description))
}

func (db *Postgres) ListTodosByOwner(ctx context.Context, ownerUUID uuid.UUID) ([]model.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_uuid = $1
		ORDER BY created_at DESC`

	rows, err := db.Pool.Query(ctx, query, ownerUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.UserUUID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Todo{}
	}
	return list, nil
}

func (db *Postgres) GetTodoByID(ctx context.Context, id int64) (*model.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE id = $1
	`
	todo, err := scanTodo(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

// UpdateTodo applies the non-nil patch fields to the row matching both id and
// owner. The WHERE predicate is the final authority: a row deleted between
// the caller's lookup and this write matches zero rows and surfaces as
// ErrNotFound.
func (db *Postgres) UpdateTodo(ctx context.Context, id int64, ownerUUID uuid.UUID, patch model.TodoPatch) (*model.Todo, error) {
	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Title != nil {
		args = append(args, *patch.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		set = append(set, fmt.Sprintf("completed = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil, errs.ErrNotFound
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id, ownerUUID)
	query := fmt.Sprintf(`
		UPDATE todos
		SET %s
		WHERE id = $%d AND user_uuid = $%d
		RETURNING `+todoColumns,
		strings.Join(set, ", "), len(args)-1, len(args))

	todo, err := scanTodo(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (db *Postgres) DeleteTodo(ctx context.Context, id int64, ownerUUID uuid.UUID) error {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_uuid = $2
	`
	tag, err := db.Pool.Exec(ctx, query, id, ownerUUID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
