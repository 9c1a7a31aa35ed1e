package queries

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

type EventQueries interface {
	List(ctx context.Context) ([]*EventView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type EventReadStore interface {
	List(ctx context.Context) ([]*EventView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
}

func NewEventQueries(readStore EventReadStore) EventQueries {
	return &eventQueriesImpl{
		readStore: readStore,
	}
}

func (q *eventQueriesImpl) List(ctx context.Context) ([]*EventView, error) {
	return q.readStore.List(ctx)
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}
