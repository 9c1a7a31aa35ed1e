package bootstrap

import (
	"event-coupon-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.LumaConfig { return cfg.Luma },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
	),
)
