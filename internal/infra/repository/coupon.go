package repository

import (
	"context"
	"time"

	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

// ClaimNext marks one unused code as used by (kind, ref) in a single
// statement. SKIP LOCKED keeps concurrent claims off the same row, so
// each caller gets a distinct code or sees the pool as exhausted.
func (r *CouponRepository) ClaimNext(ctx context.Context, kind coupon.ClaimantKind, ref string, at time.Time) (*shared.CouponClaim, error) {
	const query = `
		UPDATE coupon_codes
		SET is_used = TRUE, used_at = $3, used_by_kind = $1, used_by_ref = $2, updated_at = now()
		WHERE id = (
			SELECT id FROM coupon_codes
			WHERE is_used = FALSE
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, code`

	var claim shared.CouponClaim
	err := r.db.QueryRow(ctx, query, kind.String(), ref, at).Scan(&claim.ID, &claim.Code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no unused coupon codes left", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim coupon code", err)
	}
	return &claim, nil
}

func (r *CouponRepository) Release(ctx context.Context, couponCodeID uuid.UUID) error {
	const query = `
		UPDATE coupon_codes
		SET is_used = FALSE, used_at = NULL, used_by_kind = NULL, used_by_ref = NULL, updated_at = now()
		WHERE id = $1 AND is_used = TRUE`

	tag, err := r.db.Exec(ctx, query, couponCodeID)
	if err != nil {
		return infra.WrapRepoErr("failed to release coupon code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon code not found or not used", nil, infra.KindNotFound)
	}
	return nil
}

// ON CONFLICT DO NOTHING keeps a duplicate from aborting the enclosing
// transaction during bulk imports.
func (r *CouponRepository) Insert(ctx context.Context, code coupon.Code) (uuid.UUID, error) {
	const query = `
		INSERT INTO coupon_codes (code)
		VALUES ($1)
		ON CONFLICT (code) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, code.String()).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert coupon code", err)
	}
	return id, nil
}

func (r *CouponRepository) UpdateCode(ctx context.Context, couponCodeID uuid.UUID, code coupon.Code) error {
	const query = `
		UPDATE coupon_codes
		SET code = $2, updated_at = now()
		WHERE id = $1 AND is_used = FALSE`

	tag, err := r.db.Exec(ctx, query, couponCodeID, code.String())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update coupon code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon code not found or already used", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, couponCodeID uuid.UUID) error {
	const query = `DELETE FROM coupon_codes WHERE id = $1 AND is_used = FALSE`

	tag, err := r.db.Exec(ctx, query, couponCodeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("coupon code is referenced by a claimant", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete coupon code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon code not found or already used", nil, infra.KindNotFound)
	}
	return nil
}
