package shared

import (
	"time"

	"github.com/google/uuid"
)

type AttendeeSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	CouponCodeID *uuid.UUID
	Source       string
	LumaGuestID  *string
	LumaEventID  *string
}

type GuestSnapshot struct {
	ID                 uuid.UUID
	LumaGuestID        string
	LumaEventID        string
	GuestKey           string
	Name               string
	Email              string
	RegistrationStatus string
	ApprovalStatus     *string
	CouponCodeID       *uuid.UUID
	EmailSentAt        *time.Time
}

type CouponSnapshot struct {
	ID         uuid.UUID
	Code       string
	IsUsed     bool
	UsedAt     *time.Time
	UsedByKind *string
	UsedByRef  *string
}

// CouponClaim is the result of atomically marking one unused code as
// used inside a transaction.
type CouponClaim struct {
	ID   uuid.UUID
	Code string
}

type SettingsSnapshot struct {
	CityName     string
	Timezone     string
	LumaEventID  *string
	LumaAPIKey   *string
	ResendAPIKey *string
	UpdatedAt    time.Time
}

// SettingsPatch applies only the non-nil fields.
type SettingsPatch struct {
	CityName     *string
	Timezone     *string
	LumaEventID  *string
	LumaAPIKey   *string
	ResendAPIKey *string
}
