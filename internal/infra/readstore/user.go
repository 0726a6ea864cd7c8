package readstore

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userColumns = `
SELECT id, email, full_name, password_hash, role, is_active, last_login, created_at, updated_at
FROM users`

	findUserByIDSQL    = userColumns + ` WHERE id = $1`
	findUserByEmailSQL = userColumns + ` WHERE email = $1`
	listUsersSQL       = userColumns + ` ORDER BY created_at`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	snap, err := r.SnapshotByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorizedUserView(snap), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views, err := collect(rows, func(s rowScanner) (*queries.UserView, error) {
		snap, err := scanUser(s)
		if err != nil {
			return nil, err
		}
		return &queries.UserView{
			ID:        snap.ID,
			Email:     snap.Email,
			FullName:  snap.FullName,
			Role:      snap.Role,
			IsActive:  snap.IsActive,
			LastLogin: snap.LastLogin,
			CreatedAt: snap.CreatedAt,
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan users", err)
	}
	return views, nil
}

func (r *UserReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	snap, err := scanUser(r.db.QueryRow(ctx, findUserByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return snap, nil
}

func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	snap, err := scanUser(r.db.QueryRow(ctx, findUserByEmailSQL, email))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return snap, nil
}

func scanUser(s rowScanner) (*shared.UserSnapshot, error) {
	var u shared.UserSnapshot
	var lastLogin pgtype.Timestamptz
	err := s.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.IsActive, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &u, nil
}

func toAuthorizedUserView(u *shared.UserSnapshot) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
