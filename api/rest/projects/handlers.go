package projects

import (
	"net/http"

	"codeberg.org/taskboard/server/internal/auth"
	"codeberg.org/taskboard/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListProjects returns the projects where the caller is owner or member,
// newest first, with owner, members and tasks included
func ListProjects(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		list, err := store.ListForUser(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list projects", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// CreateProject creates a project owned by the caller. The caller is
// always connected as a member; a duplicate name is a conflict.
func CreateProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req CreateProjectEnvelope
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// sign-up creates the profile row after the provider identity;
		// a caller whose row never landed cannot own a project
		userFound, err := store.UserExists(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to look up user", err)
			return
		}

		if !userFound {
			errors.NotFound(c, "user")
			return
		}

		project, err := store.Create(c.Request.Context(), userID, req.Body)
		if err != nil {
			errors.StorageError(c, "project", err)
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}
