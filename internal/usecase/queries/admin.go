package queries

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAdminNotFound = errs.New("admin not found")

type AdminQueries interface {
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AuthorizedAdminView, error)
}

type AdminReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedAdminView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedAdminView, string, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{
		readStore: readStore,
	}
}

func (q *adminQueriesImpl) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AuthorizedAdminView, error) {
	view, err := q.readStore.FindByID(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return view, nil
}
