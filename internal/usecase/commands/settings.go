package commands

import (
	"context"

	"event-coupon-admin/internal/usecase/queries"
	"event-coupon-admin/internal/usecase/shared"
)

type SettingsCommands interface {
	Update(ctx context.Context, patch shared.SettingsPatch) error
}

type settingsCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsCommands(uow shared.UnitOfWork) SettingsCommands {
	return &settingsCommandsImpl{uow: uow}
}

// Update patches only the provided fields. The singleton row is created
// with defaults first so a patch against an empty table still lands.
func (s *settingsCommandsImpl) Update(ctx context.Context, patch shared.SettingsPatch) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settings().EnsureDefaults(ctx, queries.DefaultCityName, queries.DefaultTimezone); err != nil {
			return err
		}
		return tx.Settings().Update(ctx, patch)
	})
}
