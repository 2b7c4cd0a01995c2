package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/todoboard/backend/internal/errs"
	"github.com/todoboard/backend/internal/model"
)

func (db *Postgres) CreateUser(ctx context.Context, userUUID uuid.UUID, email, passwordHash string) (*model.User, error) {
	query := `
		INSERT INTO users (uuid, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING uuid, email, password_hash, created_at, updated_at
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, userUUID, email, passwordHash).Scan(
		&user.UUID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT uuid, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&user.UUID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
