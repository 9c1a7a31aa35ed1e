package repository

import (
	"context"

	"event-coupon-admin/internal/domain/attendee"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AttendeeRepository struct {
	db db.DBTX
}

func NewAttendeeRepository(db db.DBTX) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

func (r *AttendeeRepository) Create(ctx context.Context, a *attendee.Attendee) (uuid.UUID, error) {
	const query = `
		INSERT INTO attendees (id, name, email, source, luma_guest_id, luma_event_id, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		a.ID(),
		a.Name().Value(),
		a.Email().Value(),
		a.Source().String(),
		pgconv.StringPtrToPgtype(a.LumaGuestID()),
		pgconv.StringPtrToPgtype(a.LumaEventID()),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("attendee email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create attendee", err)
	}
	return id, nil
}

func (r *AttendeeRepository) BindCoupon(ctx context.Context, attendeeID, couponCodeID uuid.UUID) error {
	const query = `
		UPDATE attendees
		SET coupon_code_id = $2, updated_at = now()
		WHERE id = $1 AND coupon_code_id IS NULL`

	tag, err := r.db.Exec(ctx, query, attendeeID, couponCodeID)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("coupon already bound to another attendee", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("coupon code does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to bind coupon to attendee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("attendee not found or already has a coupon", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AttendeeRepository) AttachGuestCoupon(ctx context.Context, attendeeID, couponCodeID uuid.UUID, lumaGuestID, lumaEventID string) error {
	const query = `
		UPDATE attendees
		SET coupon_code_id = $2,
		    luma_guest_id  = $3,
		    luma_event_id  = $4,
		    source         = 'luma',
		    updated_at     = now()
		WHERE id = $1 AND coupon_code_id IS NULL`

	tag, err := r.db.Exec(ctx, query, attendeeID, couponCodeID, lumaGuestID, lumaEventID)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("coupon already bound to another attendee", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("coupon code does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to attach guest coupon to attendee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("attendee not found or already has a coupon", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AttendeeRepository) ClearCoupon(ctx context.Context, attendeeID uuid.UUID) error {
	const query = `
		UPDATE attendees
		SET coupon_code_id = NULL, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, attendeeID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear attendee coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("attendee not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AttendeeRepository) Delete(ctx context.Context, attendeeID uuid.UUID) error {
	const query = `DELETE FROM attendees WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, attendeeID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete attendee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("attendee not found", nil, infra.KindNotFound)
	}
	return nil
}
