package readstore

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	menuColumns = `
SELECT id, name, category, price_cents, available, description, created_at, updated_at
FROM menu_items`

	listMenuItemsSQL = menuColumns + `
WHERE ($1 = false OR available)
ORDER BY category, name`

	findMenuItemSQL = menuColumns + ` WHERE id = $1`
)

type MenuReadStore struct {
	db db.DBTX
}

func NewMenuReadStore(dbtx db.DBTX) *MenuReadStore {
	return &MenuReadStore{db: dbtx}
}

func (r *MenuReadStore) List(ctx context.Context, onlyAvailable bool) ([]*queries.MenuItemView, error) {
	rows, err := r.db.Query(ctx, listMenuItemsSQL, onlyAvailable)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	views, err := collect(rows, scanMenuItem)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan menu items", err)
	}
	return views, nil
}

func (r *MenuReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	v, err := scanMenuItem(r.db.QueryRow(ctx, findMenuItemSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}
	return v, nil
}

func (r *MenuReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	v, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.MenuItemSnapshot{
		ID:          v.ID,
		Name:        v.Name,
		Category:    v.Category,
		PriceCents:  v.PriceCents,
		Available:   v.Available,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}, nil
}

func scanMenuItem(s rowScanner) (*queries.MenuItemView, error) {
	var v queries.MenuItemView
	err := s.Scan(&v.ID, &v.Name, &v.Category, &v.PriceCents, &v.Available, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
