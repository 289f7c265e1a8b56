// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They hold
// no business logic; normalization and credential comparison happen in the
// service layer.
//
// Error semantics:
//   - CreateUser returns ErrDuplicate when the username primary key already
//     exists. The insert itself is the uniqueness check; callers must not
//     pre-check existence, because check-then-insert races under concurrent
//     identical registrations.
//   - GetUser returns ErrNotFound (gorm.ErrRecordNotFound) for missing users.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
)

// ErrDuplicate is returned when an insert violates a primary key or unique
// index.
var ErrDuplicate = errors.New("duplicate record")

// CreateUser inserts a new user row. The username is expected to be
// normalized already. A primary-key collision, the store-level signal that
// the name is taken, is mapped to ErrDuplicate; any other DB error is
// propagated raw.
func CreateUser(ctx context.Context, db *gorm.DB, username, credential string) error {
	u := &domain.User{Username: username, Credential: credential}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetUser fetches a user by exact username. Returns ErrNotFound when the user
// does not exist.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether a user row exists for the given username.
func UserExists(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ?", username).
		Count(&n).Error
	return n > 0, err
}

// isUniqueViolation detects unique-constraint violations across drivers that
// may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite: "UNIQUE constraint failed"; Postgres: "duplicate key value
	// violates unique constraint".
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
