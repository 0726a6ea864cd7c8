package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
)

const appendActivitySQL = `
INSERT INTO activities (id, user_id, action, description, entity_type, entity_id)
VALUES ($1, $2, $3, $4, $5, $6)`

type ActivityRepository struct{}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Append(ctx context.Context, tx db.DBTX, a *activity.Activity) error {
	_, err := tx.Exec(ctx, appendActivitySQL,
		a.ID(), a.UserID(), a.Action(), a.Description(), a.EntityType(), pgconv.UUIDPtrToPgtype(a.EntityID()))
	if err != nil {
		return infra.WrapRepoErr("failed to append activity", err)
	}
	return nil
}
