package mail

import (
	"context"
	"fmt"
	"log/slog"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/config"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"
	"event-coupon-admin/internal/usecase/shared"
)

// Notifier sends coupon emails through Resend. The API key and city
// name live in settings, so both are read at send time rather than at
// startup.
type Notifier struct {
	client *ResendClient
	uow    shared.UnitOfWork
	cfg    config.MailConfig
}

func NewNotifier(client *ResendClient, uow shared.UnitOfWork, cfg config.MailConfig) commands.CouponNotifier {
	return &Notifier{
		client: client,
		uow:    uow,
		cfg:    cfg,
	}
}

func (n *Notifier) SendCoupon(ctx context.Context, name, email, code string) error {
	apiKey, cityName, err := n.senderSettings(ctx)
	if err != nil {
		return err
	}

	subject, html, err := RenderCouponEmail(cityName, name, code, n.cfg.RedeemBaseURL)
	if err != nil {
		return err
	}

	messageID, err := n.client.Send(ctx, apiKey, Message{
		From:    fmt.Sprintf("%s <%s>", cityName, n.cfg.SenderAddress),
		To:      []string{email},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	slog.Info("coupon email sent", "message_id", messageID, "to", email)
	return nil
}

func (n *Notifier) senderSettings(ctx context.Context) (apiKey, cityName string, err error) {
	settings, err := n.uow.CommandReads().Settings(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", "", commands.ErrMailNotConfigured
		}
		return "", "", errs.Wrap(err, "failed to load settings")
	}

	if settings.ResendAPIKey == nil || *settings.ResendAPIKey == "" {
		return "", "", commands.ErrMailNotConfigured
	}

	cityName = settings.CityName
	if cityName == "" {
		cityName = queries.DefaultCityName
	}
	return *settings.ResendAPIKey, cityName, nil
}
