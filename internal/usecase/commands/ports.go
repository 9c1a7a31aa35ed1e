package commands

import (
	"context"
	"time"

	"event-coupon-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMailNotConfigured = errs.New("resend api key not configured")

// RemoteEvent is event metadata as returned by the Luma API.
type RemoteEvent struct {
	LumaEventID string
	Name        string
	Description *string
	StartAt     *time.Time
	EndAt       *time.Time
	Timezone    *string
	URL         *string
	CoverURL    *string
	GuestCount  *int32
	Visibility  *string
}

// RemoteGuest is one guest-list entry from the Luma API.
type RemoteGuest struct {
	LumaGuestID        string
	GuestKey           string
	Name               string
	Email              string
	RegistrationStatus string
	ApprovalStatus     *string
	AttendanceStatus   *string
	RegisteredAt       *time.Time
}

type GuestPage struct {
	Guests     []RemoteGuest
	NextCursor string
	HasMore    bool
}

type LumaClient interface {
	// GetSelf verifies the API key.
	GetSelf(ctx context.Context) error
	GetEvent(ctx context.Context, lumaEventID string) (*RemoteEvent, error)
	ListGuests(ctx context.Context, lumaEventID, status, cursor string) (*GuestPage, error)
}

// LumaClientFactory builds a client for the API key stored in settings.
type LumaClientFactory func(apiKey string) LumaClient

type SyncCounters struct {
	GuestsSynced    int32
	GuestsAdded     int32
	GuestsUpdated   int32
	CouponsAssigned int32
}

// SyncStore persists sync progress outside the UnitOfWork: log rows and
// upserts survive per-guest failures.
type SyncStore interface {
	UpsertEvent(ctx context.Context, ev RemoteEvent) error
	// UpsertGuest reports whether the row was newly inserted.
	UpsertGuest(ctx context.Context, lumaEventID string, g RemoteGuest, syncedAt time.Time) (bool, error)
	TouchEventSynced(ctx context.Context, lumaEventID string, at time.Time) error
	StartSyncLog(ctx context.Context, lumaEventID, syncType string) (uuid.UUID, error)
	// CompleteSyncLog records the counters; non-fatal per-guest errors
	// are joined into the log's error message.
	CompleteSyncLog(ctx context.Context, logID uuid.UUID, counters SyncCounters, guestErrors []string) error
	FailSyncLog(ctx context.Context, logID uuid.UUID, counters SyncCounters, errorMessage string) error
}

// CouponNotifier delivers a coupon code by email. Implementations read
// sender configuration from settings at send time.
type CouponNotifier interface {
	SendCoupon(ctx context.Context, name, email, code string) error
}
