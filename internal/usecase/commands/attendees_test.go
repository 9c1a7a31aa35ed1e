//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/pkg/clock"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func attendeeSnapshot(mutate ...func(*shared.AttendeeSnapshot)) *shared.AttendeeSnapshot {
	snap := &shared.AttendeeSnapshot{
		ID:     uuid.New(),
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Source: "website",
	}
	for _, fn := range mutate {
		fn(snap)
	}
	return snap
}

func TestAttendeeAssignCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("claims, binds, and emails", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		snap := attendeeSnapshot()
		claim := &shared.CouponClaim{ID: uuid.New(), Code: "CURSOR-TORONTO-001"}

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantAttendee, snap.ID.String(), now).Return(claim, nil)
		uow.tx.attendees.On("BindCoupon", ctx, snap.ID, claim.ID).Return(nil)
		notifier.On("SendCoupon", ctx, snap.Name, snap.Email, claim.Code).Return(nil)

		cmd := NewAttendeeCommands(uow, notifier, clock.NewMockClock(now))
		got, err := cmd.AssignCoupon(ctx, snap.ID)

		require.NoError(t, err)
		assert.Equal(t, claim, got)
		notifier.AssertExpectations(t)
		uow.tx.attendees.AssertExpectations(t)
	})

	t.Run("attendee with coupon is rejected before the claim", func(t *testing.T) {
		uow := newStubUoW()
		existing := uuid.New()
		snap := attendeeSnapshot(func(s *shared.AttendeeSnapshot) { s.CouponCodeID = &existing })

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)

		cmd := NewAttendeeCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))
		_, err := cmd.AssignCoupon(ctx, snap.ID)

		require.ErrorIs(t, err, ErrCouponAlreadyAssigned)
		uow.tx.coupons.AssertNotCalled(t, "ClaimNext", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty pool surfaces as exhaustion", func(t *testing.T) {
		uow := newStubUoW()
		snap := attendeeSnapshot()

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantAttendee, snap.ID.String(), now).Return(nil, notFoundErr())

		cmd := NewAttendeeCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))
		_, err := cmd.AssignCoupon(ctx, snap.ID)

		require.ErrorIs(t, err, ErrPoolExhausted)
	})

	t.Run("unknown attendee", func(t *testing.T) {
		uow := newStubUoW()
		id := uuid.New()

		uow.tx.reads.On("AttendeeByID", ctx, id).Return(nil, notFoundErr())

		cmd := NewAttendeeCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))
		_, err := cmd.AssignCoupon(ctx, id)

		require.ErrorIs(t, err, ErrAttendeeNotFound)
	})

	t.Run("failed email does not fail the assignment", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		snap := attendeeSnapshot()
		claim := &shared.CouponClaim{ID: uuid.New(), Code: "CURSOR-TORONTO-002"}

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)
		uow.tx.coupons.On("ClaimNext", ctx, coupon.ClaimantAttendee, snap.ID.String(), now).Return(claim, nil)
		uow.tx.attendees.On("BindCoupon", ctx, snap.ID, claim.ID).Return(nil)
		notifier.On("SendCoupon", ctx, snap.Name, snap.Email, claim.Code).Return(ErrMailNotConfigured)

		cmd := NewAttendeeCommands(uow, notifier, clock.NewMockClock(now))
		got, err := cmd.AssignCoupon(ctx, snap.ID)

		require.NoError(t, err)
		assert.Equal(t, claim, got)
	})
}

func TestAttendeeSendCouponEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sends the assigned code", func(t *testing.T) {
		uow := newStubUoW()
		notifier := &MockCouponNotifier{}
		couponID := uuid.New()
		snap := attendeeSnapshot(func(s *shared.AttendeeSnapshot) { s.CouponCodeID = &couponID })

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)
		uow.tx.reads.On("CouponByID", ctx, couponID).Return(&shared.CouponSnapshot{ID: couponID, Code: "CURSOR-TORONTO-001"}, nil)
		notifier.On("SendCoupon", ctx, snap.Name, snap.Email, "CURSOR-TORONTO-001").Return(nil)

		cmd := NewAttendeeCommands(uow, notifier, clock.NewMockClock(now))
		require.NoError(t, cmd.SendCouponEmail(ctx, snap.ID))
		notifier.AssertExpectations(t)
	})

	t.Run("no coupon assigned", func(t *testing.T) {
		uow := newStubUoW()
		snap := attendeeSnapshot()

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)

		cmd := NewAttendeeCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))
		require.ErrorIs(t, cmd.SendCouponEmail(ctx, snap.ID), ErrNoCouponAssigned)
	})
}

func TestAttendeeDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("releases the coupon before deleting", func(t *testing.T) {
		uow := newStubUoW()
		couponID := uuid.New()
		snap := attendeeSnapshot(func(s *shared.AttendeeSnapshot) { s.CouponCodeID = &couponID })

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)
		uow.tx.coupons.On("Release", ctx, couponID).Return(nil)
		uow.tx.attendees.On("Delete", ctx, snap.ID).Return(nil)

		cmd := NewAttendeeCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))
		require.NoError(t, cmd.Delete(ctx, snap.ID))
		uow.tx.coupons.AssertExpectations(t)
		uow.tx.attendees.AssertExpectations(t)
	})

	t.Run("attendee without coupon skips the release", func(t *testing.T) {
		uow := newStubUoW()
		snap := attendeeSnapshot()

		uow.tx.reads.On("AttendeeByID", ctx, snap.ID).Return(snap, nil)
		uow.tx.attendees.On("Delete", ctx, snap.ID).Return(nil)

		cmd := NewAttendeeCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))
		require.NoError(t, cmd.Delete(ctx, snap.ID))
		uow.tx.coupons.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("unknown attendee", func(t *testing.T) {
		uow := newStubUoW()
		id := uuid.New()

		uow.tx.reads.On("AttendeeByID", ctx, id).Return(nil, notFoundErr())

		cmd := NewAttendeeCommands(uow, &MockCouponNotifier{}, clock.NewMockClock(now))
		require.ErrorIs(t, cmd.Delete(ctx, id), ErrAttendeeNotFound)
	})
}
