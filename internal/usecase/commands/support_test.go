//go:build unit

package commands

import (
	"context"
	"time"

	"event-coupon-admin/internal/domain/admin"
	"event-coupon-admin/internal/domain/attendee"
	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra/db"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// stubUoW runs transaction callbacks directly against the fake Tx so
// command logic can be tested without a database.
type stubUoW struct {
	tx *fakeTx
}

func newStubUoW() *stubUoW {
	return &stubUoW{tx: newFakeTx()}
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *stubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *stubUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	attendees *MockAttendeeRepository
	coupons   *MockCouponRepository
	guests    *MockGuestRepository
	admins    *MockAdminRepository
	settings  *MockSettingsRepository
	reads     *MockCommandReads
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		attendees: &MockAttendeeRepository{},
		coupons:   &MockCouponRepository{},
		guests:    &MockGuestRepository{},
		admins:    &MockAdminRepository{},
		settings:  &MockSettingsRepository{},
		reads:     &MockCommandReads{},
	}
}

func (t *fakeTx) Attendees() shared.AttendeeRepository { return t.attendees }
func (t *fakeTx) Coupons() shared.CouponRepository     { return t.coupons }
func (t *fakeTx) Guests() shared.GuestRepository       { return t.guests }
func (t *fakeTx) Admins() shared.AdminRepository       { return t.admins }
func (t *fakeTx) Settings() shared.SettingsRepository  { return t.settings }
func (t *fakeTx) Reads() shared.CommandReads           { return t.reads }
func (t *fakeTx) DB() db.DBTX                          { return nil }

type MockAttendeeRepository struct {
	mock.Mock
}

func (m *MockAttendeeRepository) Create(ctx context.Context, a *attendee.Attendee) (uuid.UUID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAttendeeRepository) BindCoupon(ctx context.Context, attendeeID, couponCodeID uuid.UUID) error {
	args := m.Called(ctx, attendeeID, couponCodeID)
	return args.Error(0)
}

func (m *MockAttendeeRepository) AttachGuestCoupon(ctx context.Context, attendeeID, couponCodeID uuid.UUID, lumaGuestID, lumaEventID string) error {
	args := m.Called(ctx, attendeeID, couponCodeID, lumaGuestID, lumaEventID)
	return args.Error(0)
}

func (m *MockAttendeeRepository) ClearCoupon(ctx context.Context, attendeeID uuid.UUID) error {
	args := m.Called(ctx, attendeeID)
	return args.Error(0)
}

func (m *MockAttendeeRepository) Delete(ctx context.Context, attendeeID uuid.UUID) error {
	args := m.Called(ctx, attendeeID)
	return args.Error(0)
}

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) ClaimNext(ctx context.Context, kind coupon.ClaimantKind, ref string, at time.Time) (*shared.CouponClaim, error) {
	args := m.Called(ctx, kind, ref, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.CouponClaim), args.Error(1)
}

func (m *MockCouponRepository) Release(ctx context.Context, couponCodeID uuid.UUID) error {
	args := m.Called(ctx, couponCodeID)
	return args.Error(0)
}

func (m *MockCouponRepository) Insert(ctx context.Context, code coupon.Code) (uuid.UUID, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCouponRepository) UpdateCode(ctx context.Context, couponCodeID uuid.UUID, code coupon.Code) error {
	args := m.Called(ctx, couponCodeID, code)
	return args.Error(0)
}

func (m *MockCouponRepository) Delete(ctx context.Context, couponCodeID uuid.UUID) error {
	args := m.Called(ctx, couponCodeID)
	return args.Error(0)
}

type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) BindCoupon(ctx context.Context, lumaGuestID string, couponCodeID uuid.UUID) error {
	args := m.Called(ctx, lumaGuestID, couponCodeID)
	return args.Error(0)
}

func (m *MockGuestRepository) ClearCoupon(ctx context.Context, lumaGuestID string) error {
	args := m.Called(ctx, lumaGuestID)
	return args.Error(0)
}

func (m *MockGuestRepository) SetEmailSent(ctx context.Context, lumaGuestID string, at time.Time) error {
	args := m.Called(ctx, lumaGuestID, at)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, a *admin.Admin) (uuid.UUID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) UpdateLastLogin(ctx context.Context, adminID uuid.UUID) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) EnsureDefaults(ctx context.Context, cityName, timezone string) error {
	args := m.Called(ctx, cityName, timezone)
	return args.Error(0)
}

func (m *MockSettingsRepository) Update(ctx context.Context, patch shared.SettingsPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

type MockCommandReads struct {
	mock.Mock
}

func (m *MockCommandReads) AttendeeByID(ctx context.Context, id uuid.UUID) (*shared.AttendeeSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.AttendeeSnapshot), args.Error(1)
}

func (m *MockCommandReads) AttendeeByEmail(ctx context.Context, email string) (*shared.AttendeeSnapshot, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.AttendeeSnapshot), args.Error(1)
}

func (m *MockCommandReads) GuestByLumaID(ctx context.Context, lumaGuestID string) (*shared.GuestSnapshot, error) {
	args := m.Called(ctx, lumaGuestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.GuestSnapshot), args.Error(1)
}

func (m *MockCommandReads) CouponByID(ctx context.Context, id uuid.UUID) (*shared.CouponSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.CouponSnapshot), args.Error(1)
}

func (m *MockCommandReads) Settings(ctx context.Context) (*shared.SettingsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.SettingsSnapshot), args.Error(1)
}

type MockCouponNotifier struct {
	mock.Mock
}

func (m *MockCouponNotifier) SendCoupon(ctx context.Context, name, email, code string) error {
	args := m.Called(ctx, name, email, code)
	return args.Error(0)
}
