// Package handlers centralizes the translation of service-level errors into
// wire statuses.
//
// The taxonomy is fixed by the protocol contract:
//
//	400 malformed payload or self-friend-add
//	401 invalid credentials
//	404 referenced friend does not exist
//	409 username already registered
//	500 durable-store failure (underlying message surfaced; this service is
//	    internal-facing, see DESIGN.md)
//
// Handlers call mapServiceError with the most specific sentinel available;
// anything unrecognized is treated as a store failure.
package handlers

import (
	"errors"
	"net/http"

	"github.com/minecode21-boop/social-applinxx2cs/internal/services"
)

// mapServiceError converts a service error into a wire status and body.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUserExists):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, services.ErrSelfFriend):
		return http.StatusBadRequest, "Cannot add self"
	case errors.Is(err, services.ErrFriendNotFound):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, "DB Error: " + err.Error()
	}
}
