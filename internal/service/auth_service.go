package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/rail-booking/internal/model"
	"github.com/iliyamo/rail-booking/internal/repository"
	"github.com/iliyamo/rail-booking/internal/utils"
)

// UserStore persists user accounts.  Create returns
// repository.ErrEmailExists on a duplicate email; GetByEmail returns
// sql.ErrNoRows when nobody matches.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthService registers users and verifies their credentials.  It holds no
// session state; a successful login just returns the user.
type AuthService struct {
	users     UserStore
	passwords *utils.Passwords
}

func NewAuthService(users UserStore, passwords *utils.Passwords) *AuthService {
	return &AuthService{users: users, passwords: passwords}
}

// Register creates a user.  A duplicate email is reported as
// ErrDuplicateEmail and leaves the existing account untouched.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	hash, err := s.passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("%w: hash password: %w", ErrPersistence, err)
	}
	if _, err := s.users.Create(ctx, name, email, hash); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: create user: %w", ErrPersistence, err)
	}
	return nil
}

// Login returns the user whose email and password match, or
// ErrInvalidCredentials.  The returned user has no password hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.passwords.Burn(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: find user: %w", ErrStoreUnavailable, err)
	}
	if !s.passwords.Verify(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	u.PasswordHash = ""
	return &u, nil
}
