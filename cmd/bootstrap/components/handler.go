package components

import (
	"event-coupon-admin/internal/handler"
	"event-coupon-admin/internal/handler/api"
	"event-coupon-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRegisterHandler,
		api.NewAttendeeHandler,
		api.NewCouponHandler,
		api.NewGuestHandler,
		api.NewSyncHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	register *api.RegisterHandler,
	attendees *api.AttendeeHandler,
	coupons *api.CouponHandler,
	guests *api.GuestHandler,
	sync *api.SyncHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Register:  register,
		Attendees: attendees,
		Coupons:   coupons,
		Guests:    guests,
		Sync:      sync,
		Settings:  settings,
	}
}
