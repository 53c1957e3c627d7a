// Package handlers contains the HTTP handlers for the video catalog: auth
// (register/login/verify), fixture seeding, and video listing/management.
// Each handler dispatches on the request method itself so unsupported verbs
// answer 405, matching the original function-per-endpoint contract.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"video-catalog/pkg/auth"
	"video-catalog/pkg/database"
	"video-catalog/pkg/models"
)

// isUniqueViolation reports whether err is a store-level uniqueness
// conflict. Postgres surfaces class 23505; the sqlite dialect used in tests
// only exposes a message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// requireAdmin resolves the caller's session token and aborts with 403
// unless it belongs to an admin. The admin flag is read from the resolved
// user row, never from request headers.
func requireAdmin(c *gin.Context) (*models.User, bool) {
	token := strings.TrimSpace(c.GetHeader("X-Session-Token"))
	if token == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return nil, false
	}
	user, err := auth.SessionUser(database.DB, token)
	if err == auth.ErrInvalidSession {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}
	if !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return nil, false
	}
	return user, true
}
