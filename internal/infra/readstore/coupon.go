package readstore

import (
	"context"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

const couponViewQuery = `
	SELECT id, code, is_used, used_at, used_by_kind, used_by_ref, created_at
	FROM coupon_codes`

func (r *CouponReadStore) List(ctx context.Context) ([]*queries.CouponCodeView, error) {
	rows, err := r.db.Query(ctx, couponViewQuery+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupon codes", err)
	}
	defer rows.Close()

	var views []*queries.CouponCodeView
	for rows.Next() {
		view, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return views, nil
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponCodeView, error) {
	row := r.db.QueryRow(ctx, couponViewQuery+` WHERE id = $1`, id)

	view, err := scanCouponView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon code by ID", err)
	}
	return view, nil
}

func (r *CouponReadStore) Stats(ctx context.Context) (*queries.CouponStatsView, error) {
	const query = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_used)
		FROM coupon_codes`

	var stats queries.CouponStatsView
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Used); err != nil {
		return nil, infra.WrapRepoErr("failed to compute coupon stats", err)
	}
	stats.Available = stats.Total - stats.Used
	return &stats, nil
}

func scanCouponView(row rowScanner) (*queries.CouponCodeView, error) {
	var (
		view       queries.CouponCodeView
		usedAt     pgtype.Timestamptz
		usedByKind pgtype.Text
		usedByRef  pgtype.Text
		createdAt  pgtype.Timestamptz
	)

	err := row.Scan(&view.ID, &view.Code, &view.IsUsed, &usedAt, &usedByKind, &usedByRef, &createdAt)
	if err != nil {
		return nil, err
	}

	view.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	view.UsedByKind = pgconv.StringPtrFromPgtype(usedByKind)
	view.UsedByRef = pgconv.StringPtrFromPgtype(usedByRef)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
