package readstore

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SyncLogReadStore struct {
	db db.DBTX
}

func NewSyncLogReadStore(db db.DBTX) *SyncLogReadStore {
	return &SyncLogReadStore{db: db}
}

func (r *SyncLogReadStore) ListRecent(ctx context.Context, limit int) ([]*queries.SyncLogView, error) {
	const query = `
		SELECT id, luma_event_id, sync_type, status, guests_synced, guests_added,
		       guests_updated, coupons_assigned, error_message, started_at, completed_at
		FROM luma_sync_logs
		ORDER BY started_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sync logs", err)
	}
	defer rows.Close()

	var views []*queries.SyncLogView
	for rows.Next() {
		var (
			view         queries.SyncLogView
			errorMessage pgtype.Text
			startedAt    pgtype.Timestamptz
			completedAt  pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.LumaEventID, &view.SyncType, &view.Status,
			&view.GuestsSynced, &view.GuestsAdded, &view.GuestsUpdated,
			&view.CouponsAssigned, &errorMessage, &startedAt, &completedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan sync log row", err)
		}

		view.ErrorMessage = pgconv.StringPtrFromPgtype(errorMessage)
		view.StartedAt = pgconv.TimeFromPgtype(startedAt)
		view.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sync log rows", err)
	}
	return views, nil
}
