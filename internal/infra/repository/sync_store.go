package repository

import (
	"context"
	"strings"
	"time"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/commands"

	"github.com/google/uuid"
)

const (
	syncStatusStarted   = "started"
	syncStatusCompleted = "completed"
	syncStatusFailed    = "failed"
)

// SyncStore writes sync progress with implicit transactions so that a
// failed guest upsert never rolls back the ones before it.
type SyncStore struct {
	db db.DBTX
}

func NewSyncStore(db db.DBTX) *SyncStore {
	return &SyncStore{db: db}
}

func (s *SyncStore) UpsertEvent(ctx context.Context, ev commands.RemoteEvent) error {
	const query = `
		INSERT INTO luma_events (luma_event_id, name, description, start_at, end_at,
		                         timezone, url, cover_url, guest_count, visibility)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (luma_event_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			start_at = EXCLUDED.start_at,
			end_at = EXCLUDED.end_at,
			timezone = EXCLUDED.timezone,
			url = EXCLUDED.url,
			cover_url = EXCLUDED.cover_url,
			guest_count = EXCLUDED.guest_count,
			visibility = EXCLUDED.visibility,
			updated_at = now()`

	_, err := s.db.Exec(ctx, query,
		ev.LumaEventID,
		ev.Name,
		pgconv.StringPtrToPgtype(ev.Description),
		pgconv.TimePtrToPgtype(ev.StartAt),
		pgconv.TimePtrToPgtype(ev.EndAt),
		pgconv.StringPtrToPgtype(ev.Timezone),
		pgconv.StringPtrToPgtype(ev.URL),
		pgconv.StringPtrToPgtype(ev.CoverURL),
		ev.GuestCount,
		pgconv.StringPtrToPgtype(ev.Visibility),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert event", err)
	}
	return nil
}

// UpsertGuest leaves coupon_code_id and email_sent_at untouched: a
// re-sync must never detach an assigned coupon. The xmax trick tells
// inserts apart from updates without a second round trip.
func (s *SyncStore) UpsertGuest(ctx context.Context, lumaEventID string, g commands.RemoteGuest, syncedAt time.Time) (bool, error) {
	const query = `
		INSERT INTO luma_guests (luma_guest_id, luma_event_id, guest_key, name, email,
		                         registration_status, approval_status, attendance_status,
		                         registered_at, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (luma_guest_id) DO UPDATE SET
			luma_event_id = EXCLUDED.luma_event_id,
			guest_key = EXCLUDED.guest_key,
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			registration_status = EXCLUDED.registration_status,
			approval_status = EXCLUDED.approval_status,
			attendance_status = EXCLUDED.attendance_status,
			registered_at = EXCLUDED.registered_at,
			synced_at = EXCLUDED.synced_at,
			updated_at = now()
		RETURNING (xmax = 0)`

	var inserted bool
	err := s.db.QueryRow(ctx, query,
		g.LumaGuestID,
		lumaEventID,
		g.GuestKey,
		g.Name,
		strings.ToLower(strings.TrimSpace(g.Email)),
		g.RegistrationStatus,
		pgconv.StringPtrToPgtype(g.ApprovalStatus),
		pgconv.StringPtrToPgtype(g.AttendanceStatus),
		pgconv.TimePtrToPgtype(g.RegisteredAt),
		syncedAt,
	).Scan(&inserted)
	if err != nil {
		return false, infra.WrapRepoErr("failed to upsert guest", err)
	}
	return inserted, nil
}

func (s *SyncStore) TouchEventSynced(ctx context.Context, lumaEventID string, at time.Time) error {
	const query = `UPDATE luma_events SET last_synced_at = $2, updated_at = now() WHERE luma_event_id = $1`

	_, err := s.db.Exec(ctx, query, lumaEventID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to touch event sync time", err)
	}
	return nil
}

func (s *SyncStore) StartSyncLog(ctx context.Context, lumaEventID, syncType string) (uuid.UUID, error) {
	const query = `
		INSERT INTO luma_sync_logs (luma_event_id, sync_type, status, started_at)
		VALUES ($1, $2, $3, now())
		RETURNING id`

	var id uuid.UUID
	err := s.db.QueryRow(ctx, query, lumaEventID, syncType, syncStatusStarted).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to start sync log", err)
	}
	return id, nil
}

func (s *SyncStore) CompleteSyncLog(ctx context.Context, logID uuid.UUID, counters commands.SyncCounters, guestErrors []string) error {
	const query = `
		UPDATE luma_sync_logs
		SET status = $2, guests_synced = $3, guests_added = $4, guests_updated = $5,
		    coupons_assigned = $6, error_message = $7, completed_at = now()
		WHERE id = $1`

	var errorMessage *string
	if len(guestErrors) > 0 {
		joined := strings.Join(guestErrors, "; ")
		errorMessage = &joined
	}

	_, err := s.db.Exec(ctx, query, logID, syncStatusCompleted,
		counters.GuestsSynced, counters.GuestsAdded, counters.GuestsUpdated,
		counters.CouponsAssigned, pgconv.StringPtrToPgtype(errorMessage))
	if err != nil {
		return infra.WrapRepoErr("failed to complete sync log", err)
	}
	return nil
}

func (s *SyncStore) FailSyncLog(ctx context.Context, logID uuid.UUID, counters commands.SyncCounters, errorMessage string) error {
	const query = `
		UPDATE luma_sync_logs
		SET status = $2, guests_synced = $3, guests_added = $4, guests_updated = $5,
		    coupons_assigned = $6, error_message = $7, completed_at = now()
		WHERE id = $1`

	_, err := s.db.Exec(ctx, query, logID, syncStatusFailed,
		counters.GuestsSynced, counters.GuestsAdded, counters.GuestsUpdated,
		counters.CouponsAssigned, errorMessage)
	if err != nil {
		return infra.WrapRepoErr("failed to mark sync log as failed", err)
	}
	return nil
}

var _ commands.SyncStore = (*SyncStore)(nil)
