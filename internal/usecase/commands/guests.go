package commands

import (
	"context"

	"event-coupon-admin/internal/domain/attendee"
	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/clock"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/shared"
)

var ErrGuestNotFound = errs.New("guest not found")

type GuestCommands interface {
	AssignCoupon(ctx context.Context, lumaGuestID string) (*shared.CouponClaim, error)
	SendCouponEmail(ctx context.Context, lumaGuestID string) error
	UnassignCoupon(ctx context.Context, lumaGuestID string) error
}

type guestCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier CouponNotifier
	clock    clock.Clock
}

func NewGuestCommands(uow shared.UnitOfWork, notifier CouponNotifier, clk clock.Clock) GuestCommands {
	return &guestCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

// AssignCoupon claims a code for a synced guest and mirrors it onto an
// attendee row so the guest shows up in the attendee list. An existing
// attendee with the same email adopts the guest's coupon; an attendee
// that already holds a different coupon blocks the assignment.
func (g *guestCommandsImpl) AssignCoupon(ctx context.Context, lumaGuestID string) (*shared.CouponClaim, error) {
	var claim *shared.CouponClaim

	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guest, err := tx.Reads().GuestByLumaID(ctx, lumaGuestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrGuestNotFound)
			}
			return err
		}

		if guest.CouponCodeID != nil {
			return ErrCouponAlreadyAssigned
		}

		existing, err := tx.Reads().AttendeeByEmail(ctx, guest.Email)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if existing != nil && existing.CouponCodeID != nil {
			return ErrCouponAlreadyAssigned
		}

		claim, err = tx.Coupons().ClaimNext(ctx, coupon.ClaimantGuest, lumaGuestID, g.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPoolExhausted)
			}
			return err
		}

		if existing != nil {
			err = tx.Attendees().AttachGuestCoupon(ctx, existing.ID, claim.ID, guest.LumaGuestID, guest.LumaEventID)
		} else {
			err = g.createMirrorAttendee(ctx, tx, guest, claim)
		}
		if err != nil {
			return err
		}

		return tx.Guests().BindCoupon(ctx, lumaGuestID, claim.ID)
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

func (g *guestCommandsImpl) createMirrorAttendee(ctx context.Context, tx shared.Tx, guest *shared.GuestSnapshot, claim *shared.CouponClaim) error {
	name, err := attendee.NewName(guest.Name)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	email, err := attendee.NewEmail(guest.Email)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	mirror := attendee.NewLumaAttendee(name, email, guest.LumaGuestID, guest.LumaEventID)
	attendeeID, err := tx.Attendees().Create(ctx, mirror)
	if err != nil {
		return err
	}

	return tx.Attendees().BindCoupon(ctx, attendeeID, claim.ID)
}

// SendCouponEmail records email_sent_at only when delivery succeeds.
func (g *guestCommandsImpl) SendCouponEmail(ctx context.Context, lumaGuestID string) error {
	guest, err := g.uow.CommandReads().GuestByLumaID(ctx, lumaGuestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrGuestNotFound)
		}
		return err
	}

	if guest.CouponCodeID == nil {
		return ErrNoCouponAssigned
	}

	couponSnap, err := g.uow.CommandReads().CouponByID(ctx, *guest.CouponCodeID)
	if err != nil {
		return err
	}

	if err := g.notifier.SendCoupon(ctx, guest.Name, guest.Email, couponSnap.Code); err != nil {
		return err
	}

	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Guests().SetEmailSent(ctx, lumaGuestID, g.clock.Now())
	})
}

// UnassignCoupon returns the code to the pool and clears it from both
// the guest and the mirrored attendee.
func (g *guestCommandsImpl) UnassignCoupon(ctx context.Context, lumaGuestID string) error {
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guest, err := tx.Reads().GuestByLumaID(ctx, lumaGuestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrGuestNotFound)
			}
			return err
		}

		if guest.CouponCodeID == nil {
			return ErrNoCouponAssigned
		}

		if err := tx.Guests().ClearCoupon(ctx, lumaGuestID); err != nil {
			return err
		}

		mirror, err := tx.Reads().AttendeeByEmail(ctx, guest.Email)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if mirror != nil && mirror.CouponCodeID != nil && *mirror.CouponCodeID == *guest.CouponCodeID {
			if err := tx.Attendees().ClearCoupon(ctx, mirror.ID); err != nil {
				return err
			}
		}

		return tx.Coupons().Release(ctx, *guest.CouponCodeID)
	})
}
