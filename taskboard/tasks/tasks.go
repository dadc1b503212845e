package tasks

import (
	"context"

	"codeberg.org/taskboard/server/taskboard/users"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new task repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// reports whether the user owns or belongs to the project
func (r *Repository) MemberOfProject(ctx context.Context, projectID, userID string) (bool, error) {
	var member bool

	err := r.db.QueryRow(ctx, queryMemberOfProject, projectID, userID).Scan(&member)
	if err != nil {
		return false, err
	}

	return member, nil
}

// creates a task with its assignee and tag links, then returns it with
// project, creator, assignees and tags included
func (r *Repository) Create(ctx context.Context, creatorID string, req CreateTaskRequest) (*Task, error) {
	task := Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		ProjectID:   req.ProjectID,
		CreatorID:   creatorID,
	}

	if task.Status == "" {
		task.Status = StatusTodo
	}

	if task.Priority == "" {
		task.Priority = PriorityMedium
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	err = tx.QueryRow(ctx, queryInsert,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.ProjectID,
		task.CreatorID,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, assigneeID := range req.AssigneeIDs {
		if _, err := tx.Exec(ctx, queryAddAssignee, task.ID, assigneeID); err != nil {
			return nil, err
		}
	}

	for _, tagID := range req.TagIDs {
		if _, err := tx.Exec(ctx, queryAddTag, task.ID, tagID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := r.loadIncludes(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// finds a task by ID with its includes
func (r *Repository) FindByID(ctx context.Context, taskID string) (*Task, error) {
	var task Task

	err := r.db.QueryRow(ctx, queryFindByID, taskID).Scan(
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
		return nil, err
	}

	if err := r.loadIncludes(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// lists tasks belonging to projects the user owns or is a member of
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]Task, error) {
	rows, err := r.db.Query(ctx, queryListForUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Task{}

	for rows.Next() {
		var task Task

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
			return nil, err
		}

		list = append(list, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		if err := r.loadIncludes(ctx, &list[i]); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// updates a task's fields; non-nil assignee/tag lists replace the stored sets
func (r *Repository) Update(ctx context.Context, taskID string, req UpdateTaskRequest) (*Task, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	var task Task

	err = tx.QueryRow(ctx, queryUpdate,
		taskID,
		req.Title,
		req.Description,
		req.Status,
		req.Priority,
		req.DueDate,
	).Scan(
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
		return nil, err
	}

	if req.AssigneeIDs != nil {
		if _, err := tx.Exec(ctx, queryClearAssignees, taskID); err != nil {
			return nil, err
		}

		for _, assigneeID := range req.AssigneeIDs {
			if _, err := tx.Exec(ctx, queryAddAssignee, taskID, assigneeID); err != nil {
				return nil, err
			}
		}
	}

	if req.TagIDs != nil {
		if _, err := tx.Exec(ctx, queryClearTags, taskID); err != nil {
			return nil, err
		}

		for _, tagID := range req.TagIDs {
			if _, err := tx.Exec(ctx, queryAddTag, taskID, tagID); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := r.loadIncludes(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// deletes a task; returns pgx.ErrNoRows when no task matched
func (r *Repository) Delete(ctx context.Context, taskID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, taskID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// populates project, creator, assignees and tags for a task
func (r *Repository) loadIncludes(ctx context.Context, task *Task) error {
	var project ProjectInfo

	err := r.db.QueryRow(ctx, queryProjectInfo, task.ProjectID).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.OwnerID,
	)
	if err != nil {
		return err
	}

	task.Project = &project

	var creator users.User

	err = r.db.QueryRow(ctx, queryCreator, task.CreatorID).Scan(&creator.ID, &creator.Email, &creator.Name)
	if err != nil {
		return err
	}

	task.Creator = &creator

	assignees, err := r.queryUserList(ctx, queryAssignees, task.ID)
	if err != nil {
		return err
	}

	task.Assignees = assignees

	rows, err := r.db.Query(ctx, queryTags, task.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	task.Tags = []Tag{}

	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return err
		}

		task.Tags = append(task.Tags, tag)
	}

	return rows.Err()
}

func (r *Repository) queryUserList(ctx context.Context, query, taskID string) ([]users.User, error) {
	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []users.User{}

	for rows.Next() {
		var user users.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name); err != nil {
			return nil, err
		}

		list = append(list, user)
	}

	return list, rows.Err()
}
