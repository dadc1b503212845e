package users

import (
	"net/http"
	"strings"

	"codeberg.org/taskboard/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListUsers returns every user's id, email and name (the member picker)
func ListUsers(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch users", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// CreateUser creates the application profile for a provider identity.
// This is the second half of sign-up: the provider has already accepted
// the credentials, and the caller's token is not usable until this row
// exists, so the route takes no bearer token. The default display name
// is the email local-part.
func CreateUser(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		name := strings.Split(req.Email, "@")[0]

		user, err := store.Create(c.Request.Context(), req.ID, req.Email, name)
		if err != nil {
			errors.StorageError(c, "user", err)
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}
