package commands

import (
	"context"
	"fmt"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail   = errs.New("email already registered")
	ErrSelfModification = errs.New("owners cannot demote or deactivate themselves")
)

type CreateUserRequest struct {
	Email    string
	FullName string
	Password string
	Role     string
}

// UserCommands are owner-only account administration.
type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest, actorID uuid.UUID) (uuid.UUID, error)
	ChangeRole(ctx context.Context, userID uuid.UUID, role string, actorID uuid.UUID) error
	SetActive(ctx context.Context, userID uuid.UUID, active bool, actorID uuid.UUID) error
}

type userCommandsImpl struct {
	uow      shared.UnitOfWork
	hasher   PasswordHasher
	notifier ChangeNotifier
	clock    clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher, notifier ChangeNotifier, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher, notifier: notifier, clock: clk}
}

func (uc *userCommandsImpl) Create(ctx context.Context, req CreateUserRequest, actorID uuid.UUID) (uuid.UUID, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	hash, err := uc.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}
	u, err := user.NewUser(credentials.Email(), req.FullName, hash, role)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return errs.Wrap(err, "failed to create user")
		}
		desc := fmt.Sprintf("Account %s created as %s", u.Email().Value(), u.Role())
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionUserCreated, desc, activity.EntityUser, u.ID(), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.notifier.Invalidate(ctx, shared.TagUsers)
	return u.ID(), nil
}

func (uc *userCommandsImpl) ChangeRole(ctx context.Context, userID uuid.UUID, role string, actorID uuid.UUID) error {
	r, err := user.NewRole(role)
	if err != nil {
		return invalid(err)
	}
	if userID == actorID && r != user.RoleOwner {
		return ErrSelfModification
	}

	return uc.modify(ctx, userID, actorID, activity.ActionUserRoleChanged, func(u *user.User) (string, error) {
		previous := u.Role()
		if err := u.ChangeRole(r); err != nil {
			return "", invalid(err)
		}
		return fmt.Sprintf("Role of %s changed from %s to %s", u.Email().Value(), previous, r), nil
	})
}

func (uc *userCommandsImpl) SetActive(ctx context.Context, userID uuid.UUID, active bool, actorID uuid.UUID) error {
	if userID == actorID && !active {
		return ErrSelfModification
	}

	return uc.modify(ctx, userID, actorID, activity.ActionUserActivation, func(u *user.User) (string, error) {
		if active {
			u.Activate()
			return fmt.Sprintf("Account %s activated", u.Email().Value()), nil
		}
		u.Deactivate()
		return fmt.Sprintf("Account %s deactivated", u.Email().Value()), nil
	})
}

func (uc *userCommandsImpl) modify(
	ctx context.Context,
	userID, actorID uuid.UUID,
	action string,
	mutate func(u *user.User) (string, error),
) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		u, err := userFromSnapshot(snap)
		if err != nil {
			return errs.Wrap(err, "stored user is invalid")
		}
		desc, err := mutate(u)
		if err != nil {
			return err
		}
		if err := tx.Users().Update(ctx, tx.DB(), u); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		return recordActivity(ctx, tx, uc.clock.Now(), actorID, action, desc, activity.EntityUser, userID, nil)
	})
	if err != nil {
		return err
	}

	uc.notifier.Invalidate(ctx, shared.TagUsers)
	return nil
}
