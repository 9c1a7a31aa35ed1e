package queries

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAttendeeNotFound = errs.New("attendee not found")

type AttendeeQueries interface {
	List(ctx context.Context, filter AttendeeFilter) ([]*AttendeeView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*AttendeeView, error)
}

type AttendeeReadStore interface {
	List(ctx context.Context, filter AttendeeFilter) ([]*AttendeeView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AttendeeView, error)
}

type attendeeQueriesImpl struct {
	readStore AttendeeReadStore
}

func NewAttendeeQueries(readStore AttendeeReadStore) AttendeeQueries {
	return &attendeeQueriesImpl{
		readStore: readStore,
	}
}

func (q *attendeeQueriesImpl) List(ctx context.Context, filter AttendeeFilter) ([]*AttendeeView, error) {
	return q.readStore.List(ctx, filter)
}

func (q *attendeeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AttendeeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAttendeeNotFound
		}
		return nil, err
	}
	return view, nil
}
