package queries

import (
	"context"
)

type CouponQueries interface {
	List(ctx context.Context) ([]*CouponCodeView, error)
	Stats(ctx context.Context) (*CouponStatsView, error)
}

type CouponReadStore interface {
	List(ctx context.Context) ([]*CouponCodeView, error)
	Stats(ctx context.Context) (*CouponStatsView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
	}
}

func (q *couponQueriesImpl) List(ctx context.Context) ([]*CouponCodeView, error) {
	return q.readStore.List(ctx)
}

func (q *couponQueriesImpl) Stats(ctx context.Context) (*CouponStatsView, error) {
	return q.readStore.Stats(ctx)
}
