package store

import (
	"context"

	"github.com/google/uuid"

	"family-health-api/internal/model"
)

// CreateUser inserts u, assigning its id and timestamps. A taken email is
// ErrEmailTaken.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	u.ID = uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, name) VALUES ($1,$2,$3,$4)
		 RETURNING created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, u.Name,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, name, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}
