package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AttendeeView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	CouponCodeID *uuid.UUID `json:"coupon_code_id,omitempty"`
	CouponCode   *string    `json:"coupon_code,omitempty"`
	Source       string     `json:"source"`
	LumaGuestID  *string    `json:"luma_guest_id,omitempty"`
	LumaEventID  *string    `json:"luma_event_id,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AttendeeFilter narrows attendee listings; nil fields match all.
type AttendeeFilter struct {
	HasCoupon *bool
	Source    *string
}

type CouponCodeView struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	IsUsed     bool       `json:"is_used"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	UsedByKind *string    `json:"used_by_kind,omitempty"`
	UsedByRef  *string    `json:"used_by_ref,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CouponStatsView struct {
	Total     int64 `json:"total"`
	Used      int64 `json:"used"`
	Available int64 `json:"available"`
}

type GuestView struct {
	ID                 uuid.UUID  `json:"id"`
	LumaGuestID        string     `json:"luma_guest_id"`
	LumaEventID        string     `json:"luma_event_id"`
	GuestKey           string     `json:"guest_key"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	RegistrationStatus string     `json:"registration_status"`
	ApprovalStatus     *string    `json:"approval_status,omitempty"`
	AttendanceStatus   *string    `json:"attendance_status,omitempty"`
	RegisteredAt       *time.Time `json:"registered_at,omitempty"`
	CouponCodeID       *uuid.UUID `json:"coupon_code_id,omitempty"`
	CouponCode         *string    `json:"coupon_code,omitempty"`
	EmailSentAt        *time.Time `json:"email_sent_at,omitempty"`
	SyncedAt           *time.Time `json:"synced_at,omitempty"`
}

type EventView struct {
	ID           uuid.UUID  `json:"id"`
	LumaEventID  string     `json:"luma_event_id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	EndAt        *time.Time `json:"end_at,omitempty"`
	Timezone     *string    `json:"timezone,omitempty"`
	URL          *string    `json:"url,omitempty"`
	CoverURL     *string    `json:"cover_url,omitempty"`
	GuestCount   *int32     `json:"guest_count,omitempty"`
	Visibility   *string    `json:"visibility,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

type SyncLogView struct {
	ID              uuid.UUID  `json:"id"`
	LumaEventID     string     `json:"luma_event_id"`
	SyncType        string     `json:"sync_type"`
	Status          string     `json:"status"`
	GuestsSynced    int32      `json:"guests_synced"`
	GuestsAdded     int32      `json:"guests_added"`
	GuestsUpdated   int32      `json:"guests_updated"`
	CouponsAssigned int32      `json:"coupons_assigned"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type SettingsView struct {
	CityName     string     `json:"city_name"`
	Timezone     string     `json:"timezone"`
	LumaEventID  *string    `json:"luma_event_id,omitempty"`
	LumaAPIKey   *string    `json:"luma_api_key,omitempty"`
	ResendAPIKey *string    `json:"resend_api_key,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// PublicSettingsView is what the unauthenticated endpoint exposes.
// API keys never leave the admin surface.
type PublicSettingsView struct {
	CityName string `json:"city_name"`
	Timezone string `json:"timezone"`
}

type AuthorizedAdminView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
