//go:build unit || e2e

package builder

import (
	"time"

	"event-coupon-admin/internal/domain/attendee"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type AttendeeBuilder struct {
	Name   string
	Email  string
	Source string
}

func NewAttendeeBuilder() *AttendeeBuilder {
	return &AttendeeBuilder{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Source: "website",
	}
}

func (b *AttendeeBuilder) With(mutate func(*AttendeeBuilder)) *AttendeeBuilder {
	mutate(b)
	return b
}

func (b *AttendeeBuilder) BuildDomain() (*attendee.Attendee, error) {
	name, err := attendee.NewName(b.Name)
	if err != nil {
		return nil, err
	}

	email, err := attendee.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}

	source, err := attendee.NewSource(b.Source)
	if err != nil {
		return nil, err
	}

	return attendee.NewAttendee(name, email, source), nil
}

func (b *AttendeeBuilder) BuildReadModel() *queries.AttendeeView {
	now := time.Now()
	return &queries.AttendeeView{
		ID:           uuid.New(),
		Name:         b.Name,
		Email:        b.Email,
		Source:       b.Source,
		RegisteredAt: now,
		CreatedAt:    now,
	}
}

func (b *AttendeeBuilder) WithName(name string) *AttendeeBuilder {
	b.Name = name
	return b
}

func (b *AttendeeBuilder) WithEmail(email string) *AttendeeBuilder {
	b.Email = email
	return b
}

func (b *AttendeeBuilder) WithSource(source string) *AttendeeBuilder {
	b.Source = source
	return b
}
