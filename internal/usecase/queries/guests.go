package queries

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/errs"
)

var (
	ErrGuestNotFound     = errs.New("guest not found")
	ErrNoEventConfigured = errs.New("no event configured")
)

type GuestQueries interface {
	// ListForConfiguredEvent returns guests of the event configured in
	// settings, optionally filtered by registration status.
	ListForConfiguredEvent(ctx context.Context, status *string) ([]*GuestView, error)
	GetByLumaID(ctx context.Context, lumaGuestID string) (*GuestView, error)
}

type GuestReadStore interface {
	ListByEvent(ctx context.Context, lumaEventID string, status *string) ([]*GuestView, error)
	FindByLumaID(ctx context.Context, lumaGuestID string) (*GuestView, error)
}

type ConfiguredEventReader interface {
	ConfiguredLumaEventID(ctx context.Context) (*string, error)
}

type guestQueriesImpl struct {
	readStore GuestReadStore
	settings  ConfiguredEventReader
}

func NewGuestQueries(readStore GuestReadStore, settings ConfiguredEventReader) GuestQueries {
	return &guestQueriesImpl{
		readStore: readStore,
		settings:  settings,
	}
}

func (q *guestQueriesImpl) ListForConfiguredEvent(ctx context.Context, status *string) ([]*GuestView, error) {
	lumaEventID, err := q.settings.ConfiguredLumaEventID(ctx)
	if err != nil {
		return nil, err
	}
	if lumaEventID == nil {
		return nil, ErrNoEventConfigured
	}
	return q.readStore.ListByEvent(ctx, *lumaEventID, status)
}

func (q *guestQueriesImpl) GetByLumaID(ctx context.Context, lumaGuestID string) (*GuestView, error) {
	view, err := q.readStore.FindByLumaID(ctx, lumaGuestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return view, nil
}
