package repository

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/shared"
)

// app_settings is a singleton row keyed by id = 1.
type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(db db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) EnsureDefaults(ctx context.Context, cityName, timezone string) error {
	const query = `
		INSERT INTO app_settings (id, city_name, timezone)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, cityName, timezone); err != nil {
		return infra.WrapRepoErr("failed to ensure default settings", err)
	}
	return nil
}

func (r *SettingsRepository) Update(ctx context.Context, patch shared.SettingsPatch) error {
	const query = `
		UPDATE app_settings
		SET city_name      = COALESCE($1, city_name),
		    timezone       = COALESCE($2, timezone),
		    luma_event_id  = COALESCE($3, luma_event_id),
		    luma_api_key   = COALESCE($4, luma_api_key),
		    resend_api_key = COALESCE($5, resend_api_key),
		    updated_at     = now()
		WHERE id = 1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.StringPtrToPgtype(patch.CityName),
		pgconv.StringPtrToPgtype(patch.Timezone),
		pgconv.StringPtrToPgtype(patch.LumaEventID),
		pgconv.StringPtrToPgtype(patch.LumaAPIKey),
		pgconv.StringPtrToPgtype(patch.ResendAPIKey),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update settings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("settings row missing", nil, infra.KindNotFound)
	}
	return nil
}
