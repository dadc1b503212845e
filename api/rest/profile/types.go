package profile

import (
	"context"

	"codeberg.org/taskboard/server/taskboard/users"
)

// the user storage operations the profile handlers need
type UserStore interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
	UpdateName(ctx context.Context, userID, name string) (*users.User, error)
}

// contains data for updating the caller's profile
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
