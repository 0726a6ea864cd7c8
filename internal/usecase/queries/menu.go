package queries

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

type MenuReadStore interface {
	List(ctx context.Context, onlyAvailable bool) ([]*MenuItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type MenuQueries interface {
	List(ctx context.Context, onlyAvailable bool) ([]*MenuItemView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	store MenuReadStore
	cache Cache
}

func NewMenuQueries(store MenuReadStore, cache Cache) MenuQueries {
	return &menuQueriesImpl{store: store, cache: cache}
}

func (q *menuQueriesImpl) List(ctx context.Context, onlyAvailable bool) ([]*MenuItemView, error) {
	key := "menu:all"
	if onlyAvailable {
		key = "menu:available"
	}
	return cached(ctx, q.cache, key, []string{shared.TagMenu}, func(ctx context.Context) ([]*MenuItemView, error) {
		return q.store.List(ctx, onlyAvailable)
	})
}

func (q *menuQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	it, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return it, nil
}
