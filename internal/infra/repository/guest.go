package repository

import (
	"context"
	"time"

	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"

	"github.com/google/uuid"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(db db.DBTX) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) BindCoupon(ctx context.Context, lumaGuestID string, couponCodeID uuid.UUID) error {
	const query = `
		UPDATE luma_guests
		SET coupon_code_id = $2
		WHERE luma_guest_id = $1 AND coupon_code_id IS NULL`

	tag, err := r.db.Exec(ctx, query, lumaGuestID, couponCodeID)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("coupon already bound to another guest", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("coupon code does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to bind coupon to guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found or already has a coupon", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuestRepository) ClearCoupon(ctx context.Context, lumaGuestID string) error {
	const query = `
		UPDATE luma_guests
		SET coupon_code_id = NULL, email_sent_at = NULL
		WHERE luma_guest_id = $1`

	tag, err := r.db.Exec(ctx, query, lumaGuestID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear guest coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuestRepository) SetEmailSent(ctx context.Context, lumaGuestID string, at time.Time) error {
	const query = `
		UPDATE luma_guests
		SET email_sent_at = $2
		WHERE luma_guest_id = $1`

	tag, err := r.db.Exec(ctx, query, lumaGuestID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark guest email sent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}
