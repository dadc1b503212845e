package users

const (
	queryCreate = `
		INSERT INTO users (id, email, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, name
	`

	queryFindByID = `
		SELECT id, email, name
		FROM users
		WHERE id = $1
	`

	queryUpdateName = `
		UPDATE users
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, name
	`

	queryList = `
		SELECT id, email, name
		FROM users
		ORDER BY created_at ASC
	`
)
