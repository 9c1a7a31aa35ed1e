package components

import (
	"event-coupon-admin/internal/infra/luma"
	"event-coupon-admin/internal/infra/mail"
	"event-coupon-admin/internal/pkg/clock"
	"event-coupon-admin/internal/pkg/config"
	"event-coupon-admin/internal/pkg/jwt"
	"event-coupon-admin/internal/usecase"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"
	"event-coupon-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	luma.NewFactory,
	mail.NewResendClient,
	mail.NewNotifier,
	NewAuthUseCase,
	func(a usecase.AuthUseCase) usecase.TokenValidator { return a },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRegistrationCommands,
		commands.NewAttendeeCommands,
		commands.NewGuestCommands,
		commands.NewCouponCommands,
		commands.NewSettingsCommands,
		commands.NewSyncCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAttendeeQueries,
		queries.NewCouponQueries,
		queries.NewGuestQueries,
		queries.NewEventQueries,
		queries.NewSyncLogQueries,
		queries.NewSettingsQueries,
		queries.NewAdminQueries,
	),
)

func NewAuthUseCase(uowImpl shared.UnitOfWork, adminReadStore queries.AdminReadStore, jwtService *jwt.Service, cfg config.Config) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(uowImpl, adminReadStore, jwtService, cfg.Admin.RegistrationSecret)
}
