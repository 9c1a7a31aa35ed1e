package readstore

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(db db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

func (r *SettingsReadStore) Get(ctx context.Context) (*queries.SettingsView, error) {
	const query = `
		SELECT city_name, timezone, luma_event_id, luma_api_key, resend_api_key, updated_at
		FROM app_settings
		WHERE id = 1`

	var (
		view         queries.SettingsView
		lumaEventID  pgtype.Text
		lumaAPIKey   pgtype.Text
		resendAPIKey pgtype.Text
		updatedAt    pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query).Scan(&view.CityName, &view.Timezone, &lumaEventID, &lumaAPIKey, &resendAPIKey, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read settings", err)
	}

	view.LumaEventID = pgconv.StringPtrFromPgtype(lumaEventID)
	view.LumaAPIKey = pgconv.StringPtrFromPgtype(lumaAPIKey)
	view.ResendAPIKey = pgconv.StringPtrFromPgtype(resendAPIKey)
	view.UpdatedAt = pgconv.TimePtrFromPgtype(updatedAt)
	return &view, nil
}
