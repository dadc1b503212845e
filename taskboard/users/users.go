package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates the application profile for an auth-provider identity.
// The id is the provider's subject id, stored as-is.
func (r *Repository) Create(ctx context.Context, id, email, name string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryCreate, id, email, name).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByID, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// updates a user's display name
func (r *Repository) UpdateName(ctx context.Context, userID, name string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryUpdateName, name, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// lists all users
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []User{}

	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name); err != nil {
			return nil, err
		}

		list = append(list, user)
	}

	return list, rows.Err()
}
