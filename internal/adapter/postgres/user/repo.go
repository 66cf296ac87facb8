// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/leitner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leitner-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "username", "password_hash", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	u, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address. The comparison is case-insensitive.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where("lower(email) = lower(?)", email)

	u, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdatePassword replaces the password hash of the given user.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, updatedAt time.Time) error {
	q := postgres.Builder.Update(table).
		Set("password_hash", passwordHash).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a user. Cards go with it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, q postgres.Sqlizer) (*domain.User, error) {
	row, err := postgres.QueryRow(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
