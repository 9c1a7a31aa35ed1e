package readstore

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(db db.DBTX) *EventReadStore {
	return &EventReadStore{db: db}
}

const eventViewQuery = `
	SELECT id, luma_event_id, name, description, start_at, end_at, timezone,
	       url, cover_url, guest_count, visibility, last_synced_at
	FROM luma_events`

func (r *EventReadStore) List(ctx context.Context) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx, eventViewQuery+` ORDER BY start_at DESC NULLS LAST`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	var views []*queries.EventView
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}
	return views, nil
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row := r.db.QueryRow(ctx, eventViewQuery+` WHERE id = $1`, id)

	view, err := scanEventView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	return view, nil
}

func scanEventView(row rowScanner) (*queries.EventView, error) {
	var (
		view         queries.EventView
		description  pgtype.Text
		startAt      pgtype.Timestamptz
		endAt        pgtype.Timestamptz
		timezone     pgtype.Text
		url          pgtype.Text
		coverURL     pgtype.Text
		guestCount   pgtype.Int4
		visibility   pgtype.Text
		lastSyncedAt pgtype.Timestamptz
	)

	err := row.Scan(&view.ID, &view.LumaEventID, &view.Name, &description, &startAt, &endAt,
		&timezone, &url, &coverURL, &guestCount, &visibility, &lastSyncedAt)
	if err != nil {
		return nil, err
	}

	view.Description = pgconv.StringPtrFromPgtype(description)
	view.StartAt = pgconv.TimePtrFromPgtype(startAt)
	view.EndAt = pgconv.TimePtrFromPgtype(endAt)
	view.Timezone = pgconv.StringPtrFromPgtype(timezone)
	view.URL = pgconv.StringPtrFromPgtype(url)
	view.CoverURL = pgconv.StringPtrFromPgtype(coverURL)
	if guestCount.Valid {
		view.GuestCount = &guestCount.Int32
	}
	view.Visibility = pgconv.StringPtrFromPgtype(visibility)
	view.LastSyncedAt = pgconv.TimePtrFromPgtype(lastSyncedAt)
	return &view, nil
}

var _ queries.EventReadStore = (*EventReadStore)(nil)

// ConfiguredEventReader exposes the Luma event configured in settings.
type ConfiguredEventReader struct {
	db db.DBTX
}

func NewConfiguredEventReader(db db.DBTX) *ConfiguredEventReader {
	return &ConfiguredEventReader{db: db}
}

func (r *ConfiguredEventReader) ConfiguredLumaEventID(ctx context.Context) (*string, error) {
	const query = `SELECT luma_event_id FROM app_settings WHERE id = 1`

	var lumaEventID pgtype.Text
	err := r.db.QueryRow(ctx, query).Scan(&lumaEventID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read configured event", err)
	}
	return pgconv.StringPtrFromPgtype(lumaEventID), nil
}
