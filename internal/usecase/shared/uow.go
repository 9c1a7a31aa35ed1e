package shared

import (
	"context"
	"time"

	"event-coupon-admin/internal/domain/admin"
	"event-coupon-admin/internal/domain/attendee"
	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Attendees() AttendeeRepository
	Coupons() CouponRepository
	Guests() GuestRepository
	Admins() AdminRepository
	Settings() SettingsRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	AttendeeByID(ctx context.Context, id uuid.UUID) (*AttendeeSnapshot, error)
	AttendeeByEmail(ctx context.Context, email string) (*AttendeeSnapshot, error)
	GuestByLumaID(ctx context.Context, lumaGuestID string) (*GuestSnapshot, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*CouponSnapshot, error)
	Settings(ctx context.Context) (*SettingsSnapshot, error)
}

type AttendeeRepository interface {
	Create(ctx context.Context, a *attendee.Attendee) (uuid.UUID, error)
	BindCoupon(ctx context.Context, attendeeID, couponCodeID uuid.UUID) error
	// AttachGuestCoupon binds a coupon and the guest's Luma refs in one
	// update, flipping the source to luma.
	AttachGuestCoupon(ctx context.Context, attendeeID, couponCodeID uuid.UUID, lumaGuestID, lumaEventID string) error
	ClearCoupon(ctx context.Context, attendeeID uuid.UUID) error
	Delete(ctx context.Context, attendeeID uuid.UUID) error
}

type CouponRepository interface {
	// ClaimNext marks any one unused code as used by (kind, ref) in a
	// single statement; KindNotFound means the pool is exhausted.
	ClaimNext(ctx context.Context, kind coupon.ClaimantKind, ref string, at time.Time) (*CouponClaim, error)
	Release(ctx context.Context, couponCodeID uuid.UUID) error
	// Insert skips codes that already exist; KindDuplicateKey reports the
	// skip without aborting the surrounding transaction.
	Insert(ctx context.Context, code coupon.Code) (uuid.UUID, error)
	UpdateCode(ctx context.Context, couponCodeID uuid.UUID, code coupon.Code) error
	Delete(ctx context.Context, couponCodeID uuid.UUID) error
}

type GuestRepository interface {
	BindCoupon(ctx context.Context, lumaGuestID string, couponCodeID uuid.UUID) error
	ClearCoupon(ctx context.Context, lumaGuestID string) error
	SetEmailSent(ctx context.Context, lumaGuestID string, at time.Time) error
}

type AdminRepository interface {
	Create(ctx context.Context, a *admin.Admin) (uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
	UpdateLastLogin(ctx context.Context, adminID uuid.UUID) error
}

type SettingsRepository interface {
	// EnsureDefaults inserts the singleton settings row if missing.
	EnsureDefaults(ctx context.Context, cityName, timezone string) error
	Update(ctx context.Context, patch SettingsPatch) error
}
