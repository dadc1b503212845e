package projects

import (
	"context"

	"codeberg.org/taskboard/server/taskboard/projects"
)

// the project storage operations the handlers need
type ProjectStore interface {
	ListForUser(ctx context.Context, userID string) ([]projects.Project, error)
	Create(ctx context.Context, ownerID string, req projects.CreateProjectRequest) (*projects.Project, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}

// the wrapped request shape the web client sends: project fields
// arrive under a top-level "body" key
type CreateProjectEnvelope struct {
	Body projects.CreateProjectRequest `json:"body" binding:"required"`
}
