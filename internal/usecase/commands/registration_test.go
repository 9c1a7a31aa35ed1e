//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/clock"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("registers attendee and claims a coupon", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		cmd := NewRegistrationCommands(uow, notifier, clock.NewMockClock(now))

		attendeeID := uuid.New()
		claim := &shared.CouponClaim{ID: uuid.New(), Code: "CURSOR-TORONTO-001"}

		uow.tx.attendees.On("Create", ctx, mock.Anything).Return(attendeeID, nil)
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantAttendee, attendeeID.String(), now).Return(claim, nil)
		uow.tx.attendees.On("BindCoupon", ctx, attendeeID, claim.ID).Return(nil)
		notifier.On("SendCoupon", ctx, "Ada Lovelace", "ada@example.com", claim.Code).Return(nil)

		result, err := cmd.Register(ctx, "Ada Lovelace", "ada@example.com")

		require.NoError(t, err)
		assert.True(t, result.CouponAssigned)
		assert.Equal(t, claim.Code, result.CouponCode)
		assert.True(t, result.EmailSent)
		notifier.AssertExpectations(t)
	})

	t.Run("pool exhausted keeps the registration", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		cmd := NewRegistrationCommands(uow, notifier, clock.NewMockClock(now))

		attendeeID := uuid.New()
		uow.tx.attendees.On("Create", ctx, mock.Anything).Return(attendeeID, nil)
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantAttendee, attendeeID.String(), now).
			Return(nil, infra.WrapRepoErr("no unused codes", nil, infra.KindNotFound))

		result, err := cmd.Register(ctx, "Ada Lovelace", "ada@example.com")

		require.NoError(t, err)
		assert.False(t, result.CouponAssigned)
		assert.Empty(t, result.CouponCode)
		assert.False(t, result.EmailSent)
		notifier.AssertNotCalled(t, "SendCoupon", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email maps to ErrDuplicateEmail", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewRegistrationCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		uow.tx.attendees.On("Create", ctx, mock.Anything).
			Return(uuid.Nil, infra.WrapRepoErr("attendee exists", assert.AnError, infra.KindDuplicateKey))

		_, err := cmd.Register(ctx, "Ada Lovelace", "ada@example.com")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("failed email delivery does not fail the registration", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		cmd := NewRegistrationCommands(uow, notifier, clock.NewMockClock(now))

		attendeeID := uuid.New()
		claim := &shared.CouponClaim{ID: uuid.New(), Code: "CURSOR-TORONTO-001"}

		uow.tx.attendees.On("Create", ctx, mock.Anything).Return(attendeeID, nil)
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantAttendee, attendeeID.String(), now).Return(claim, nil)
		uow.tx.attendees.On("BindCoupon", ctx, attendeeID, claim.ID).Return(nil)
		notifier.On("SendCoupon", ctx, mock.Anything, mock.Anything, claim.Code).Return(assert.AnError)

		result, err := cmd.Register(ctx, "Ada Lovelace", "ada@example.com")

		require.NoError(t, err)
		assert.True(t, result.CouponAssigned)
		assert.False(t, result.EmailSent)
	})

	t.Run("invalid input maps to ErrDomainValidation", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewRegistrationCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		_, err := cmd.Register(ctx, "", "ada@example.com")
		assert.ErrorIs(t, err, ErrDomainValidation)

		_, err = cmd.Register(ctx, "Ada Lovelace", "not-an-email")
		assert.ErrorIs(t, err, ErrDomainValidation)
	})
}
