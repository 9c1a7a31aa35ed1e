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

func guestSnapshot(mutate ...func(*shared.GuestSnapshot)) *shared.GuestSnapshot {
	g := &shared.GuestSnapshot{
		ID:                 uuid.New(),
		LumaGuestID:        "gst-abc123",
		LumaEventID:        "evt-xyz789",
		Name:               "Alan Turing",
		Email:              "alan@example.com",
		RegistrationStatus: "confirmed",
	}
	for _, f := range mutate {
		f(g)
	}
	return g
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func TestGuestAssignCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("claims a coupon and creates a mirror attendee", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		guest := guestSnapshot()
		claim := &shared.CouponClaim{ID: uuid.New(), Code: "CURSOR-TORONTO-001"}
		mirrorID := uuid.New()

		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.reads.On("AttendeeByEmail", ctx, guest.Email).Return(nil, notFoundErr())
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantGuest, guest.LumaGuestID, now).Return(claim, nil)
		uow.tx.attendees.On("Create", ctx, mock.Anything).Return(mirrorID, nil)
		uow.tx.attendees.On("BindCoupon", ctx, mirrorID, claim.ID).Return(nil)
		uow.tx.guests.On("BindCoupon", ctx, guest.LumaGuestID, claim.ID).Return(nil)

		got, err := cmd.AssignCoupon(ctx, guest.LumaGuestID)

		require.NoError(t, err)
		assert.Equal(t, claim, got)
		uow.tx.attendees.AssertExpectations(t)
		uow.tx.guests.AssertExpectations(t)
	})

	t.Run("existing attendee with the same email adopts the coupon", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		guest := guestSnapshot()
		existing := &shared.AttendeeSnapshot{ID: uuid.New(), Name: guest.Name, Email: guest.Email}
		claim := &shared.CouponClaim{ID: uuid.New(), Code: "CURSOR-TORONTO-002"}

		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.reads.On("AttendeeByEmail", ctx, guest.Email).Return(existing, nil)
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantGuest, guest.LumaGuestID, now).Return(claim, nil)
		uow.tx.attendees.On("AttachGuestCoupon", ctx, existing.ID, claim.ID, guest.LumaGuestID, guest.LumaEventID).Return(nil)
		uow.tx.guests.On("BindCoupon", ctx, guest.LumaGuestID, claim.ID).Return(nil)

		_, err := cmd.AssignCoupon(ctx, guest.LumaGuestID)

		require.NoError(t, err)
		uow.tx.attendees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		uow.tx.attendees.AssertExpectations(t)
	})

	t.Run("guest already holding a coupon is rejected before claiming", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		couponID := uuid.New()
		guest := guestSnapshot(func(g *shared.GuestSnapshot) { g.CouponCodeID = &couponID })
		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)

		_, err := cmd.AssignCoupon(ctx, guest.LumaGuestID)

		assert.ErrorIs(t, err, ErrCouponAlreadyAssigned)
		uow.tx.coupons.AssertNotCalled(t, "ClaimNext", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("attendee with a different coupon blocks the assignment", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		guest := guestSnapshot()
		otherCoupon := uuid.New()
		existing := &shared.AttendeeSnapshot{ID: uuid.New(), Email: guest.Email, CouponCodeID: &otherCoupon}

		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.reads.On("AttendeeByEmail", ctx, guest.Email).Return(existing, nil)

		_, err := cmd.AssignCoupon(ctx, guest.LumaGuestID)

		assert.ErrorIs(t, err, ErrCouponAlreadyAssigned)
		uow.tx.coupons.AssertNotCalled(t, "ClaimNext", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("exhausted pool maps to ErrPoolExhausted", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		guest := guestSnapshot()
		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.reads.On("AttendeeByEmail", ctx, guest.Email).Return(nil, notFoundErr())
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantGuest, guest.LumaGuestID, now).
			Return(nil, notFoundErr())

		_, err := cmd.AssignCoupon(ctx, guest.LumaGuestID)
		assert.ErrorIs(t, err, ErrPoolExhausted)
	})

	t.Run("unknown guest maps to ErrGuestNotFound", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		uow.tx.reads.On("GuestByLumaID", ctx, "gst-missing").Return(nil, notFoundErr())

		_, err := cmd.AssignCoupon(ctx, "gst-missing")
		assert.ErrorIs(t, err, ErrGuestNotFound)
	})
}

func TestGuestSendCouponEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("records email_sent_at only after a successful send", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		cmd := NewGuestCommands(uow, notifier, clock.NewMockClock(now))

		couponID := uuid.New()
		guest := guestSnapshot(func(g *shared.GuestSnapshot) { g.CouponCodeID = &couponID })

		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.reads.On("CouponByID", ctx, couponID).
			Return(&shared.CouponSnapshot{ID: couponID, Code: "CURSOR-TORONTO-001", IsUsed: true}, nil)
		notifier.On("SendCoupon", ctx, guest.Name, guest.Email, "CURSOR-TORONTO-001").Return(nil)
		uow.tx.guests.On("SetEmailSent", ctx, guest.LumaGuestID, now).Return(nil)

		err := cmd.SendCouponEmail(ctx, guest.LumaGuestID)

		require.NoError(t, err)
		uow.tx.guests.AssertExpectations(t)
	})

	t.Run("failed delivery leaves email_sent_at untouched", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		cmd := NewGuestCommands(uow, notifier, clock.NewMockClock(now))

		couponID := uuid.New()
		guest := guestSnapshot(func(g *shared.GuestSnapshot) { g.CouponCodeID = &couponID })

		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.reads.On("CouponByID", ctx, couponID).
			Return(&shared.CouponSnapshot{ID: couponID, Code: "CURSOR-TORONTO-001", IsUsed: true}, nil)
		notifier.On("SendCoupon", ctx, guest.Name, guest.Email, "CURSOR-TORONTO-001").Return(assert.AnError)

		err := cmd.SendCouponEmail(ctx, guest.LumaGuestID)

		assert.Error(t, err)
		uow.tx.guests.AssertNotCalled(t, "SetEmailSent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("guest without a coupon is rejected", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		guest := guestSnapshot()
		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)

		err := cmd.SendCouponEmail(ctx, guest.LumaGuestID)
		assert.ErrorIs(t, err, ErrNoCouponAssigned)
	})
}

func TestGuestUnassignCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("releases the code and clears the mirror attendee", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		couponID := uuid.New()
		guest := guestSnapshot(func(g *shared.GuestSnapshot) { g.CouponCodeID = &couponID })
		mirror := &shared.AttendeeSnapshot{ID: uuid.New(), Email: guest.Email, CouponCodeID: &couponID}

		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.guests.On("ClearCoupon", ctx, guest.LumaGuestID).Return(nil)
		uow.tx.reads.On("AttendeeByEmail", ctx, guest.Email).Return(mirror, nil)
		uow.tx.attendees.On("ClearCoupon", ctx, mirror.ID).Return(nil)
		uow.tx.coupons.On("Release", ctx, couponID).Return(nil)

		err := cmd.UnassignCoupon(ctx, guest.LumaGuestID)

		require.NoError(t, err)
		uow.tx.coupons.AssertExpectations(t)
		uow.tx.attendees.AssertExpectations(t)
	})

	t.Run("attendee holding a different coupon is left alone", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		couponID := uuid.New()
		otherCoupon := uuid.New()
		guest := guestSnapshot(func(g *shared.GuestSnapshot) { g.CouponCodeID = &couponID })
		mirror := &shared.AttendeeSnapshot{ID: uuid.New(), Email: guest.Email, CouponCodeID: &otherCoupon}

		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)
		uow.tx.guests.On("ClearCoupon", ctx, guest.LumaGuestID).Return(nil)
		uow.tx.reads.On("AttendeeByEmail", ctx, guest.Email).Return(mirror, nil)
		uow.tx.coupons.On("Release", ctx, couponID).Return(nil)

		err := cmd.UnassignCoupon(ctx, guest.LumaGuestID)

		require.NoError(t, err)
		uow.tx.attendees.AssertNotCalled(t, "ClearCoupon", mock.Anything, mock.Anything)
	})

	t.Run("guest without a coupon is rejected", func(t *testing.T) {
		uow := newStubUoW()
		cmd := NewGuestCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))

		guest := guestSnapshot()
		uow.tx.reads.On("GuestByLumaID", ctx, guest.LumaGuestID).Return(guest, nil)

		err := cmd.UnassignCoupon(ctx, guest.LumaGuestID)
		assert.ErrorIs(t, err, ErrNoCouponAssigned)
	})
}
