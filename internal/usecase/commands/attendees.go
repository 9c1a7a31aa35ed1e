package commands

import (
	"context"
	"log/slog"

	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/clock"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAttendeeNotFound      = errs.New("attendee not found")
	ErrCouponAlreadyAssigned = errs.New("coupon already assigned")
	ErrNoCouponAssigned      = errs.New("no coupon assigned")
)

type AttendeeCommands interface {
	AssignCoupon(ctx context.Context, attendeeID uuid.UUID) (*shared.CouponClaim, error)
	SendCouponEmail(ctx context.Context, attendeeID uuid.UUID) error
	Delete(ctx context.Context, attendeeID uuid.UUID) error
}

type attendeeCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier CouponNotifier
	clock    clock.Clock
}

func NewAttendeeCommands(uow shared.UnitOfWork, notifier CouponNotifier, clk clock.Clock) AttendeeCommands {
	return &attendeeCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

// AssignCoupon claims the oldest free code and binds it in one
// transaction. The email goes out after commit, best effort.
func (a *attendeeCommandsImpl) AssignCoupon(ctx context.Context, attendeeID uuid.UUID) (*shared.CouponClaim, error) {
	var (
		claim    *shared.CouponClaim
		snapshot *shared.AttendeeSnapshot
	)

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snapshot, err = tx.Reads().AttendeeByID(ctx, attendeeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrAttendeeNotFound)
			}
			return err
		}

		if snapshot.CouponCodeID != nil {
			return ErrCouponAlreadyAssigned
		}

		claim, err = tx.Coupons().ClaimNext(ctx, coupon.ClaimantAttendee, attendeeID.String(), a.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPoolExhausted)
			}
			return err
		}

		return tx.Attendees().BindCoupon(ctx, attendeeID, claim.ID)
	})
	if err != nil {
		return nil, err
	}

	if err := a.notifier.SendCoupon(ctx, snapshot.Name, snapshot.Email, claim.Code); err != nil {
		slog.Warn("coupon email delivery failed",
			"attendee_id", attendeeID,
			"error", err.Error())
	}

	return claim, nil
}

func (a *attendeeCommandsImpl) SendCouponEmail(ctx context.Context, attendeeID uuid.UUID) error {
	snapshot, err := a.uow.CommandReads().AttendeeByID(ctx, attendeeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAttendeeNotFound)
		}
		return err
	}

	if snapshot.CouponCodeID == nil {
		return ErrNoCouponAssigned
	}

	couponSnap, err := a.uow.CommandReads().CouponByID(ctx, *snapshot.CouponCodeID)
	if err != nil {
		return err
	}

	return a.notifier.SendCoupon(ctx, snapshot.Name, snapshot.Email, couponSnap.Code)
}

// Delete releases any assigned coupon back to the pool before removing
// the attendee.
func (a *attendeeCommandsImpl) Delete(ctx context.Context, attendeeID uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().AttendeeByID(ctx, attendeeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrAttendeeNotFound)
			}
			return err
		}

		if snapshot.CouponCodeID != nil {
			if err := tx.Coupons().Release(ctx, *snapshot.CouponCodeID); err != nil {
				return err
			}
		}

		return tx.Attendees().Delete(ctx, attendeeID)
	})
}
