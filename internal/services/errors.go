// Package services defines the business logic for accounts, friendships, and
// direct messages. This file centralizes the service-level error values so
// they can be consistently returned by service methods and checked by callers.
//
// Translation into wire statuses happens at the handler layer; services never
// know about HTTP.
package services

import "errors"

var (
	// ErrUserExists indicates a registration collided with an existing
	// username. It is derived from the store's uniqueness violation, never
	// from a pre-insert existence check.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when the username is unknown or the
	// credential does not match exactly.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSelfFriend is returned when a user attempts to befriend themselves.
	ErrSelfFriend = errors.New("cannot add self as friend")

	// ErrFriendNotFound indicates the requested friend is not a registered
	// user.
	ErrFriendNotFound = errors.New("friend not found")
)
