package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/menu"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"

	"github.com/google/uuid"
)

const (
	createMenuItemSQL = `
INSERT INTO menu_items (id, name, category, price_cents, available, description)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateMenuItemSQL = `
UPDATE menu_items
SET name = $2, category = $3, price_cents = $4, available = $5, description = $6, updated_at = now()
WHERE id = $1`

	deleteMenuItemSQL = `DELETE FROM menu_items WHERE id = $1`
)

type MenuItemRepository struct{}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{}
}

func (r *MenuItemRepository) Create(ctx context.Context, tx db.DBTX, it *menu.Item) error {
	_, err := tx.Exec(ctx, createMenuItemSQL,
		it.ID(), it.Name(), it.Category().String(), it.Price().Cents(), it.Available(), it.Description())
	if err != nil {
		return infra.WrapRepoErr("failed to create menu item", err)
	}
	return nil
}

func (r *MenuItemRepository) Update(ctx context.Context, tx db.DBTX, it *menu.Item) error {
	tag, err := tx.Exec(ctx, updateMenuItemSQL,
		it.ID(), it.Name(), it.Category().String(), it.Price().Cents(), it.Available(), it.Description())
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteMenuItemSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}
