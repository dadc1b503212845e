package projects

import (
	"context"

	"codeberg.org/taskboard/server/taskboard/tasks"
	"codeberg.org/taskboard/server/taskboard/users"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new project repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// reports whether a user record exists for the given id
func (r *Repository) UserExists(ctx context.Context, userID string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, queryUserExists, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// creates a project and connects its members in one transaction.
// The owner is always connected as a member, whether or not they
// appear in the request's member list.
func (r *Repository) Create(ctx context.Context, ownerID string, req CreateProjectRequest) (*Project, error) {
	project := Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	err = tx.QueryRow(ctx, queryInsert,
		project.ID,
		project.Name,
		project.Description,
		project.OwnerID,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, err
	}

	memberIDs := append([]string{ownerID}, req.MemberIDs...)
	for _, memberID := range memberIDs {
		if _, err := tx.Exec(ctx, queryAddMember, project.ID, memberID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := r.loadIncludes(ctx, &project, false); err != nil {
		return nil, err
	}

	return &project, nil
}

// lists projects where the user is owner or member, newest first,
// including owner, members and tasks
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]Project, error) {
	rows, err := r.db.Query(ctx, queryListForUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Project{}

	for rows.Next() {
		var project Project

		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.OwnerID,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		list = append(list, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		if err := r.loadIncludes(ctx, &list[i], true); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// finds a project by ID with owner and members included
func (r *Repository) FindByID(ctx context.Context, projectID string) (*Project, error) {
	var project Project

	err := r.db.QueryRow(ctx, queryFindByID, projectID).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.OwnerID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	if err := r.loadIncludes(ctx, &project, true); err != nil {
		return nil, err
	}

	return &project, nil
}

// populates owner, members and optionally tasks
func (r *Repository) loadIncludes(ctx context.Context, project *Project, withTasks bool) error {
	var owner users.User

	err := r.db.QueryRow(ctx, queryOwner, project.OwnerID).Scan(&owner.ID, &owner.Email, &owner.Name)
	if err != nil {
		return err
	}

	project.Owner = &owner

	rows, err := r.db.Query(ctx, queryMembers, project.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	project.Members = []users.User{}

	for rows.Next() {
		var member users.User
		if err := rows.Scan(&member.ID, &member.Email, &member.Name); err != nil {
			return err
		}

		project.Members = append(project.Members, member)
	}

	if err := rows.Err(); err != nil {
		return err
	}

	if !withTasks {
		project.Tasks = []tasks.Task{}
		return nil
	}

	return r.loadTasks(ctx, project)
}

// loads the project's task rows without their own includes
func (r *Repository) loadTasks(ctx context.Context, project *Project) error {
	rows, err := r.db.Query(ctx, queryTasksForProject, project.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	project.Tasks = []tasks.Task{}

	for rows.Next() {
		var task tasks.Task

		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.DueDate,
			&task.ProjectID,
			&task.CreatorID,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return err
		}

		project.Tasks = append(project.Tasks, task)
	}

	return rows.Err()
}
