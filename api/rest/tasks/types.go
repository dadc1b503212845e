package tasks

import (
	"context"

	"codeberg.org/taskboard/server/taskboard/tasks"
)

// the task storage operations the handlers need
type TaskStore interface {
	MemberOfProject(ctx context.Context, projectID, userID string) (bool, error)
	Create(ctx context.Context, creatorID string, req tasks.CreateTaskRequest) (*tasks.Task, error)
	FindByID(ctx context.Context, taskID string) (*tasks.Task, error)
	ListForUser(ctx context.Context, userID string) ([]tasks.Task, error)
	Update(ctx context.Context, taskID string, req tasks.UpdateTaskRequest) (*tasks.Task, error)
	Delete(ctx context.Context, taskID string) error
}
