package attendee

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponAlreadyAssigned = errors.New("attendee already has a coupon assigned")
	ErrNoCouponAssigned      = errors.New("attendee has no coupon assigned")
)

type Attendee struct {
	id           uuid.UUID
	name         Name
	email        Email
	couponCodeID *uuid.UUID
	source       Source
	lumaGuestID  *string
	lumaEventID  *string
	registeredAt time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAttendee(name Name, email Email, source Source) *Attendee {
	return &Attendee{
		id:     uuid.New(),
		name:   name,
		email:  email,
		source: source,
	}
}

// NewLumaAttendee mirrors a synced guest into the attendee list.
func NewLumaAttendee(name Name, email Email, lumaGuestID, lumaEventID string) *Attendee {
	return &Attendee{
		id:          uuid.New(),
		name:        name,
		email:       email,
		source:      SourceLuma,
		lumaGuestID: &lumaGuestID,
		lumaEventID: &lumaEventID,
	}
}

func (a *Attendee) AssignCoupon(couponCodeID uuid.UUID) error {
	if a.couponCodeID != nil {
		return ErrCouponAlreadyAssigned
	}
	a.couponCodeID = &couponCodeID
	return nil
}

func (a *Attendee) UnassignCoupon() error {
	if a.couponCodeID == nil {
		return ErrNoCouponAssigned
	}
	a.couponCodeID = nil
	return nil
}

func (a *Attendee) HasCoupon() bool {
	return a.couponCodeID != nil
}

func (a *Attendee) ID() uuid.UUID            { return a.id }
func (a *Attendee) Name() Name               { return a.name }
func (a *Attendee) Email() Email             { return a.email }
func (a *Attendee) CouponCodeID() *uuid.UUID { return a.couponCodeID }
func (a *Attendee) Source() Source           { return a.source }
func (a *Attendee) LumaGuestID() *string     { return a.lumaGuestID }
func (a *Attendee) LumaEventID() *string     { return a.lumaEventID }
func (a *Attendee) RegisteredAt() time.Time  { return a.registeredAt }
func (a *Attendee) CreatedAt() time.Time     { return a.createdAt }
func (a *Attendee) UpdatedAt() time.Time     { return a.updatedAt }
