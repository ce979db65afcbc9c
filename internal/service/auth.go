package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/crypto"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
	pinLen         = 4
)

// AuthService owns registration, credential verification and the optional
// PIN quick-unlock. Usernames are normalized to lower case, so uniqueness is
// case-insensitive, matching the tag-name policy.
type AuthService struct {
	users   store.UserRepository
	streaks store.StreakRepository
	hasher  *crypto.Hasher
}

func NewAuthService(users store.UserRepository, streaks store.StreakRepository, hasher *crypto.Hasher) *AuthService {
	return &AuthService{users: users, streaks: streaks, hasher: hasher}
}

// Register creates a user plus their zero-valued streak record.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if len(username) < minUsernameLen {
		return nil, fmt.Errorf("%w: username must be at least %d characters", ErrValidation, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username taken", ErrConflict)
	}

	hash, salt, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if _, err := s.streaks.Create(ctx, &models.Streak{UserID: user.ID}); err != nil {
		return nil, fmt.Errorf("create streak: %w", err)
	}
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords fail
// identically so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup username: %w", err)
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash, user.PasswordSalt) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	}
	return user, nil
}

func validPin(pin string) bool {
	if len(pin) != pinLen {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// SetPin stores an independently salted quick-unlock PIN for the user.
func (s *AuthService) SetPin(ctx context.Context, userID int, pin string) error {
	if userID <= 0 {
		return ErrAuthentication
	}
	if !validPin(pin) {
		return fmt.Errorf("%w: pin must be a 4-digit number", ErrValidation)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}
	hash, salt, err := s.hasher.Hash(pin)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	return s.users.SetPin(ctx, userID, hash, salt)
}

// VerifyPin re-derives the stored PIN hash and compares.
func (s *AuthService) VerifyPin(ctx context.Context, userID int, pin string) (bool, error) {
	if userID <= 0 {
		return false, ErrAuthentication
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return false, fmt.Errorf("%w: user", ErrNotFound)
	}
	if user.PinHash == nil || user.PinSalt == nil {
		return false, fmt.Errorf("%w: no pin configured", ErrNotFound)
	}
	return s.hasher.Verify(pin, *user.PinHash, *user.PinSalt), nil
}
