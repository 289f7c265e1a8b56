// Package handlers provides the HTTP endpoints for the public API.
//
// This file defines the response helpers. The protocol is plain text, not
// JSON: every response is a text/plain body paired with an HTTP status code,
// and success bodies are operation-specific strings ("OK", "Friend Added!",
// an encoded friend list, and so on). Store failures are logged with the
// request-scoped logger before being surfaced.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minecode21-boop/social-applinxx2cs/internal/http/middleware"
)

// reply writes a plain-text response with the given status.
func reply(c *gin.Context, status int, body string) {
	c.String(status, body)
}

// failErr maps a service error to its wire status and body, logging 5xx with
// request context.
func failErr(c *gin.Context, err error) {
	status, body := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Err(err).
			Msg("store failure")
	}
	c.String(status, body)
	c.Abort()
}
