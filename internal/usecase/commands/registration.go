package commands

import (
	"context"
	"log/slog"

	"event-coupon-admin/internal/domain/attendee"
	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/clock"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDomainValidation = errs.New("domain validation error")
	ErrDuplicateEmail   = errs.New("email already registered")
	ErrPoolExhausted    = errs.New("no coupon codes available")
)

type RegistrationResult struct {
	AttendeeID     uuid.UUID
	CouponAssigned bool
	CouponCode     string
	EmailSent      bool
}

type RegistrationCommands interface {
	Register(ctx context.Context, name, email string) (*RegistrationResult, error)
}

type registrationCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier CouponNotifier
	clock    clock.Clock
}

func NewRegistrationCommands(uow shared.UnitOfWork, notifier CouponNotifier, clk clock.Clock) RegistrationCommands {
	return &registrationCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

// Register creates the attendee and claims a coupon in one transaction.
// An exhausted pool does not fail the registration: the attendee is
// kept without a coupon. The email goes out only after commit and never
// undoes the claim.
func (r *registrationCommandsImpl) Register(ctx context.Context, name, email string) (*RegistrationResult, error) {
	attendeeName, err := attendee.NewName(name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	attendeeEmail, err := attendee.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	newAttendee := attendee.NewAttendee(attendeeName, attendeeEmail, attendee.SourceWebsite)
	result := &RegistrationResult{AttendeeID: newAttendee.ID()}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		attendeeID, err := tx.Attendees().Create(ctx, newAttendee)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateEmail)
			}
			return err
		}

		claim, err := tx.Coupons().ClaimNext(ctx, coupon.ClaimantAttendee, attendeeID.String(), r.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Pool exhausted: attendee stays registered without a code.
				return nil
			}
			return err
		}

		if err := tx.Attendees().BindCoupon(ctx, attendeeID, claim.ID); err != nil {
			return err
		}

		result.CouponAssigned = true
		result.CouponCode = claim.Code
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.CouponAssigned {
		if err := r.notifier.SendCoupon(ctx, attendeeName.Value(), attendeeEmail.Value(), result.CouponCode); err != nil {
			slog.Warn("coupon email delivery failed",
				"attendee_id", result.AttendeeID,
				"error", err.Error())
		} else {
			result.EmailSent = true
		}
	}

	return result, nil
}
