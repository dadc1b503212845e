package tasks

const (
	queryInsert = `
		INSERT INTO tasks (id, title, description, status, priority, due_date, project_id, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	queryFindByID = `
		SELECT id, title, description, status, priority, due_date, project_id, creator_id, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	queryListForUser = `
		SELECT t.id, t.title, t.description, t.status, t.priority, t.due_date, t.project_id, t.creator_id, t.created_at, t.updated_at
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE p.owner_id = $1
		   OR EXISTS (
			SELECT 1 FROM project_members m
			WHERE m.project_id = p.id AND m.user_id = $1
		   )
		ORDER BY t.created_at DESC
	`

	// nil parameters keep the stored value
	queryUpdate = `
		UPDATE tasks
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    status      = COALESCE($4, status),
		    priority    = COALESCE($5, priority),
		    due_date    = COALESCE($6, due_date),
		    updated_at  = NOW()
		WHERE id = $1
		RETURNING id, title, description, status, priority, due_date, project_id, creator_id, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM tasks
		WHERE id = $1
	`

	// a caller may touch a task only through a project they own or belong to
	queryMemberOfProject = `
		SELECT EXISTS (
			SELECT 1 FROM projects p
			WHERE p.id = $1
			  AND (
				p.owner_id = $2
				OR EXISTS (
					SELECT 1 FROM project_members m
					WHERE m.project_id = p.id AND m.user_id = $2
				)
			  )
		)
	`

	queryProjectInfo = `
		SELECT id, name, description, owner_id
		FROM projects
		WHERE id = $1
	`

	queryCreator = `
		SELECT id, email, name
		FROM users
		WHERE id = $1
	`

	queryAssignees = `
		SELECT u.id, u.email, u.name
		FROM task_assignees ta
		JOIN users u ON u.id = ta.user_id
		WHERE ta.task_id = $1
		ORDER BY u.name ASC
	`

	queryTags = `
		SELECT g.id, g.name
		FROM task_tags tt
		JOIN tags g ON g.id = tt.tag_id
		WHERE tt.task_id = $1
		ORDER BY g.name ASC
	`

	queryClearAssignees = `
		DELETE FROM task_assignees WHERE task_id = $1
	`

	queryAddAssignee = `
		INSERT INTO task_assignees (task_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	queryClearTags = `
		DELETE FROM task_tags WHERE task_id = $1
	`

	queryAddTag = `
		INSERT INTO task_tags (task_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
)
