package readstore

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listRecentActivitiesSQL = `
SELECT id, user_id, action, description, entity_type, entity_id, created_at
FROM activities
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

type ActivityReadStore struct {
	db db.DBTX
}

func NewActivityReadStore(dbtx db.DBTX) *ActivityReadStore {
	return &ActivityReadStore{db: dbtx}
}

func (r *ActivityReadStore) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ActivityView, error) {
	rows, err := r.db.Query(ctx, listRecentActivitiesSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activities", err)
	}
	views, err := collect(rows, func(s rowScanner) (*queries.ActivityView, error) {
		var v queries.ActivityView
		var entityID pgtype.UUID
		if err := s.Scan(&v.ID, &v.UserID, &v.Action, &v.Description, &v.EntityType, &entityID, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.EntityID = pgconv.UUIDPtrFromPgtype(entityID)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan activities", err)
	}
	return views, nil
}
