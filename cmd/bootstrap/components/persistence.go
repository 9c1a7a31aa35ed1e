package components

import (
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/infra/readstore"
	"event-coupon-admin/internal/infra/repository"
	"event-coupon-admin/internal/infra/uow"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewSyncStore,
			fx.As(new(commands.SyncStore)),
		),
		fx.Annotate(
			readstore.NewAttendeeReadStore,
			fx.As(new(queries.AttendeeReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewGuestReadStore,
			fx.As(new(queries.GuestReadStore)),
		),
		fx.Annotate(
			readstore.NewConfiguredEventReader,
			fx.As(new(queries.ConfiguredEventReader)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewSyncLogReadStore,
			fx.As(new(queries.SyncLogReadStore)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
