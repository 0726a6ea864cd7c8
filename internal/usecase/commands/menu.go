package commands

import (
	"context"
	"fmt"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/domain/menu"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

type MenuItemRequest struct {
	Name        string
	Category    string
	PriceCents  int64
	Available   bool
	Description string
}

type MenuCommands interface {
	Create(ctx context.Context, req MenuItemRequest, actorID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, itemID uuid.UUID, req MenuItemRequest, actorID uuid.UUID) error
	Delete(ctx context.Context, itemID, actorID uuid.UUID) error
}

type menuCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier ChangeNotifier
	clock    clock.Clock
}

func NewMenuCommands(uow shared.UnitOfWork, notifier ChangeNotifier, clk clock.Clock) MenuCommands {
	return &menuCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *menuCommandsImpl) Create(ctx context.Context, req MenuItemRequest, actorID uuid.UUID) (uuid.UUID, error) {
	category, price, err := menuInput(req)
	if err != nil {
		return uuid.Nil, err
	}
	it, err := menu.NewItem(req.Name, category, price, req.Available, req.Description)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.MenuItems().Create(ctx, tx.DB(), it); err != nil {
			return errs.Wrap(err, "failed to create menu item")
		}
		desc := fmt.Sprintf("Menu item %s added at %s", it.Name(), it.Price())
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionMenuItemCreated, desc, activity.EntityMenuItem, it.ID(), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.notifier.Invalidate(ctx, shared.TagMenu)
	return it.ID(), nil
}

func (uc *menuCommandsImpl) Update(ctx context.Context, itemID uuid.UUID, req MenuItemRequest, actorID uuid.UUID) error {
	category, price, err := menuInput(req)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().MenuItemByID(ctx, itemID)
		if err != nil {
			return notFoundAs(err, ErrMenuItemNotFound)
		}
		it := menuItemFromSnapshot(snap)
		if err := it.Update(req.Name, category, price, req.Available, req.Description); err != nil {
			return invalid(err)
		}
		if err := tx.MenuItems().Update(ctx, tx.DB(), it); err != nil {
			return notFoundAs(err, ErrMenuItemNotFound)
		}
		desc := fmt.Sprintf("Menu item %s updated", it.Name())
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionMenuItemUpdated, desc, activity.EntityMenuItem, itemID, nil)
	})
	if err != nil {
		return err
	}

	uc.notifier.Invalidate(ctx, shared.TagMenu)
	return nil
}

func (uc *menuCommandsImpl) Delete(ctx context.Context, itemID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().MenuItemByID(ctx, itemID)
		if err != nil {
			return notFoundAs(err, ErrMenuItemNotFound)
		}
		if err := tx.MenuItems().Delete(ctx, tx.DB(), itemID); err != nil {
			return notFoundAs(err, ErrMenuItemNotFound)
		}
		desc := fmt.Sprintf("Menu item %s removed", snap.Name)
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionMenuItemDeleted, desc, activity.EntityMenuItem, itemID, nil)
	})
	if err != nil {
		return err
	}

	uc.notifier.Invalidate(ctx, shared.TagMenu)
	return nil
}

func menuInput(req MenuItemRequest) (menu.Category, money.Money, error) {
	category, err := menu.NewCategory(req.Category)
	if err != nil {
		return "", money.Money{}, invalid(err)
	}
	price, err := money.New(req.PriceCents)
	if err != nil {
		return "", money.Money{}, invalid(err)
	}
	return category, price, nil
}
