// Package service contains the application services for identity and
// ownership-scoped todo access.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/todoboard/backend/internal/errs"
	"github.com/todoboard/backend/internal/model"
	"github.com/todoboard/backend/internal/token"
)

const (
	bcryptCost        = 12
	minPasswordLength = 6
	// bcrypt truncates beyond 72 bytes; reject rather than silently shorten.
	maxPasswordLength = 72
	maxEmailLength    = 255
)

// UserRepository is the storage surface the identity service needs.
type UserRepository interface {
	CreateUser(ctx context.Context, userUUID uuid.UUID, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type UserService struct {
	repo   UserRepository
	issuer *token.Issuer
}

func NewUserService(repo UserRepository, issuer *token.Issuer) *UserService {
	return &UserService{repo: repo, issuer: issuer}
}

// Register creates an account with a bcrypt-hashed password. The returned
// user carries the hash; callers build responses from model.UserResponse so
// it never reaches a client.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.CreateUser(ctx, uuid.New(), email, string(hash))
}

// Login authenticates the credentials and mints an access token. Unknown
// email and wrong password both surface as the same ErrUnauthenticated so
// responses cannot be used to enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", nil, err
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", nil, errs.ErrUnauthenticated
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errs.ErrUnauthenticated
	}

	signed, err := s.issuer.Sign(user.UUID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, user, nil
}

func validateCredentials(email, password string) error {
	if email == "" || len(email) > maxEmailLength {
		return errs.ErrInvalidInput
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return errs.ErrInvalidInput
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return errs.ErrInvalidInput
	}
	return nil
}
