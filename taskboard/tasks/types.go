package tasks

import (
	"time"

	"codeberg.org/taskboard/server/taskboard/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles task database operations
type Repository struct {
	db *pgxpool.Pool
}

// task workflow states and priorities
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"

	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// represents a unit of work inside a project
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	ProjectID   string       `json:"projectId"`
	CreatorID   string       `json:"creatorId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Project     *ProjectInfo `json:"project,omitempty"`
	Creator     *users.User  `json:"creator,omitempty"`
	Assignees   []users.User `json:"assignees"`
	Tags        []Tag        `json:"tags"`
}

// the slice of the parent project included with a task
type ProjectInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
}

// a label attached to tasks
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// contains data for creating a task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Status      string     `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"dueDate"`
	ProjectID   string     `json:"projectId" binding:"required,uuid"`
	AssigneeIDs []string   `json:"assigneeIds" binding:"max=50"`
	TagIDs      []string   `json:"tagIds" binding:"max=20"`
}

// contains data for updating a task; nil fields are left unchanged,
// non-nil assignee/tag lists replace the stored sets
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	Status      *string    `json:"status,omitempty" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *string    `json:"priority,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssigneeIDs []string   `json:"assigneeIds,omitempty" binding:"max=50"`
	TagIDs      []string   `json:"tagIds,omitempty" binding:"max=20"`
}
