package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"

	"github.com/google/uuid"
)

const (
	createUserSQL = `
INSERT INTO users (id, email, full_name, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateUserSQL = `
UPDATE users SET role = $2, is_active = $3, updated_at = now() WHERE id = $1`

	updateUserLastLoginSQL = `
UPDATE users SET last_login = now() WHERE id = $1`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, createUserSQL,
		u.ID(), u.Email().Value(), u.FullName(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// Update persists role and activation; the rest of a user is fixed.
func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, updateUserSQL, u.ID(), u.Role().String(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateUserLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
