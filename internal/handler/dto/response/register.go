package response

import "github.com/google/uuid"

type RegisterAttendeeResponse struct {
	AttendeeID     uuid.UUID `json:"attendee_id"`
	CouponAssigned bool      `json:"coupon_assigned"`
	CouponCode     *string   `json:"coupon_code,omitempty"`
	EmailSent      bool      `json:"email_sent"`
}
