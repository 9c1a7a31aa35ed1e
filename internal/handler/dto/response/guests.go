package response

import (
	"time"

	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
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

func FromGuestView(view *queries.GuestView) (*GuestResponse, error) {
	var resp GuestResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map guest view")
	}
	return &resp, nil
}

func FromGuestViews(views []*queries.GuestView) ([]*GuestResponse, error) {
	resp := make([]*GuestResponse, len(views))
	for i, view := range views {
		mapped, err := FromGuestView(view)
		if err != nil {
			return nil, err
		}
		resp[i] = mapped
	}
	return resp, nil
}
