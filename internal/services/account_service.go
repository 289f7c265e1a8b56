// Package services – AccountService
//
// This file implements the AccountService, which owns registration and login.
// Usernames are normalized (trimmed, lowercased) before any lookup or insert,
// so storage and comparison are case- and whitespace-insensitive. Uniqueness
// is enforced by the users primary key: the insert itself is the race-safe
// existence check, and a duplicate-key violation surfaces as ErrUserExists.
//
// Credentials are compared verbatim. Hashing is a known gap; see DESIGN.md.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
	"github.com/minecode21-boop/social-applinxx2cs/internal/presence"
	"github.com/minecode21-boop/social-applinxx2cs/internal/repo"
)

// AccountService implements registration and authentication.
type AccountService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Presence is touched on every successful authentication.
	Presence *presence.Tracker
}

// Register creates a new account. Concurrent registrations of the same name
// are serialized by the primary key: exactly one insert succeeds and the rest
// return ErrUserExists. Registration does not refresh presence; the user has
// not authenticated yet.
func (s *AccountService) Register(ctx context.Context, username, credential string) error {
	username = domain.NormalizeUsername(username)
	err := repo.CreateUser(ctx, s.DB, username, credential)
	if errors.Is(err, repo.ErrDuplicate) {
		return ErrUserExists
	}
	return err
}

// Login verifies the credential for username with an exact match. A match
// refreshes the user's presence as a side effect; a mismatch or unknown
// username returns ErrInvalidCredentials. Store failures are propagated raw.
func (s *AccountService) Login(ctx context.Context, username, credential string) error {
	username = domain.NormalizeUsername(username)
	u, err := repo.GetUser(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if u.Credential != credential {
		return ErrInvalidCredentials
	}
	s.Presence.Touch(username)
	return nil
}
