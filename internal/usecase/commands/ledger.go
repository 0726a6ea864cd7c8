package commands

import (
	"context"
	"fmt"
	"time"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/domain/ledger"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordTransactionRequest struct {
	Type        string
	AmountCents int64
	Category    string
	Description string
	Date        time.Time
}

type LedgerCommands interface {
	// Record books a manual income or expense that is not tied to a booking.
	Record(ctx context.Context, req RecordTransactionRequest, actorID uuid.UUID) (uuid.UUID, error)
}

type ledgerCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier ChangeNotifier
	clock    clock.Clock
}

func NewLedgerCommands(uow shared.UnitOfWork, notifier ChangeNotifier, clk clock.Clock) LedgerCommands {
	return &ledgerCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *ledgerCommandsImpl) Record(ctx context.Context, req RecordTransactionRequest, actorID uuid.UUID) (uuid.UUID, error) {
	kind, err := ledger.NewType(req.Type)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	amount, err := money.New(req.AmountCents)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	t, err := ledger.NewTransaction(kind, amount, req.Category, req.Description, req.Date, &actorID)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Transactions().Create(ctx, tx.DB(), t); err != nil {
			return errs.Wrap(err, "failed to record transaction")
		}
		desc := fmt.Sprintf("Recorded %s of %s (%s)", t.Type(), t.Amount(), t.Category())
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionTransactionAdded, desc, activity.EntityTransaction, t.ID(), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.notifier.Invalidate(ctx, shared.TagLedger, shared.TagDashboard)
	return t.ID(), nil
}
