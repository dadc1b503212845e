package profile

import (
	"net/http"

	"codeberg.org/taskboard/server/internal/auth"
	"codeberg.org/taskboard/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated caller's own user record.
// The record's key equals the token subject; no other record is reachable.
func GetProfile(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		user, err := store.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "profile")
				return
			}

			errors.InternalError(c, "failed to fetch profile", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile updates the caller's display name and returns the record
func UpdateProfile(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := store.UpdateName(c.Request.Context(), userID, req.Name)
		if err != nil {
			errors.StorageError(c, "profile", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
