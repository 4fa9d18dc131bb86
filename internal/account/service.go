// ABOUTME: Registration and credential verification service over the user store
// ABOUTME: Validates input, hashes passwords, and collapses login failures

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/2389/inkwell/internal/auth"
	"github.com/2389/inkwell/internal/store"
)

// ErrMissingCredentials is returned when the email or password is empty.
var ErrMissingCredentials = errors.New("email and password are required")

// ErrInvalidCredentials is returned for any login failure. Unknown email and
// wrong password collapse into this one error so accounts cannot be enumerated.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service handles registration and login against the user store.
type Service struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewService creates a new account service
func NewService(users store.UserStore) *Service {
	return &Service{
		users:  users,
		logger: slog.Default().With("component", "account"),
	}
}

// Register validates the credentials, hashes the password, and creates the user.
// Returns ErrMissingCredentials if either field is empty and store.ErrEmailExists
// if the email is already registered.
func (s *Service) Register(ctx context.Context, email, password string) (*store.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &store.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("registered user", "id", user.ID)
	return user, nil
}

// VerifyCredentials looks up the user by email and checks the password.
// Both "no such email" and "wrong password" return ErrInvalidCredentials; the
// unknown-email path performs a dummy bcrypt comparison so the two cases cost
// the same.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (*store.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			auth.DummyCheck(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
