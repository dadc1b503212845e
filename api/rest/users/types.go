package users

import (
	"context"

	"codeberg.org/taskboard/server/taskboard/users"
)

// the user storage operations the handlers need
type UserStore interface {
	List(ctx context.Context) ([]users.User, error)
	Create(ctx context.Context, id, email, name string) (*users.User, error)
}

// contains data for completing sign-up: the auth provider's subject id
// and the registered email. The id is stored as the user's primary key
// with no transformation.
type CreateUserRequest struct {
	ID    string `json:"id" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
}
