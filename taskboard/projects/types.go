package projects

import (
	"time"

	"codeberg.org/taskboard/server/taskboard/tasks"
	"codeberg.org/taskboard/server/taskboard/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles project database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a project with its owner, member set and tasks.
// A caller may read or mutate a project only as its owner or a member;
// the owner always appears in the member set.
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	OwnerID     string       `json:"ownerId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Owner       *users.User  `json:"owner,omitempty"`
	Members     []users.User `json:"members"`
	Tasks       []tasks.Task `json:"tasks,omitempty"`
}

// contains data for creating a project
type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	MemberIDs   []string `json:"memberIds" binding:"max=50"`
}
