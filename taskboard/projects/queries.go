package projects

const (
	queryInsert = `
		INSERT INTO projects (id, name, description, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	queryAddMember = `
		INSERT INTO project_members (project_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	queryListForUser = `
		SELECT p.id, p.name, p.description, p.owner_id, p.created_at, p.updated_at
		FROM projects p
		WHERE p.owner_id = $1
		   OR EXISTS (
			SELECT 1 FROM project_members m
			WHERE m.project_id = p.id AND m.user_id = $1
		   )
		ORDER BY p.created_at DESC
	`

	queryFindByID = `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	queryOwner = `
		SELECT id, email, name
		FROM users
		WHERE id = $1
	`

	queryMembers = `
		SELECT u.id, u.email, u.name
		FROM project_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.project_id = $1
		ORDER BY u.name ASC
	`

	queryTasksForProject = `
		SELECT id, title, description, status, priority, due_date, project_id, creator_id, created_at, updated_at
		FROM tasks
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	queryUserExists = `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
	`
)
