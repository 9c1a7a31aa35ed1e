//go:build unit || e2e

package builder

import (
	"time"

	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	LumaGuestID        string
	LumaEventID        string
	Name               string
	Email              string
	RegistrationStatus string
	CouponCode         *string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		LumaGuestID:        "gst-abc123",
		LumaEventID:        "evt-xyz789",
		Name:               "Alan Turing",
		Email:              "alan@example.com",
		RegistrationStatus: "confirmed",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) WithCouponCode(code string) *GuestBuilder {
	b.CouponCode = &code
	return b
}

func (b *GuestBuilder) BuildReadModel() *queries.GuestView {
	now := time.Now()
	view := &queries.GuestView{
		ID:                 uuid.New(),
		LumaGuestID:        b.LumaGuestID,
		LumaEventID:        b.LumaEventID,
		Name:               b.Name,
		Email:              b.Email,
		RegistrationStatus: b.RegistrationStatus,
		SyncedAt:           &now,
	}
	if b.CouponCode != nil {
		couponID := uuid.New()
		view.CouponCodeID = &couponID
		view.CouponCode = b.CouponCode
	}
	return view
}
