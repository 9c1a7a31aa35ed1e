package coupon

import "event-coupon-admin/internal/pkg/errs"

var ErrInvalidClaimantKind = errs.New("invalid claimant kind")

// ClaimantKind identifies who a coupon code was consumed by.
type ClaimantKind string

const (
	ClaimantAttendee ClaimantKind = "attendee"
	ClaimantGuest    ClaimantKind = "luma_guest"
)

func (k ClaimantKind) String() string {
	return string(k)
}

func (k ClaimantKind) IsValid() bool {
	switch k {
	case ClaimantAttendee, ClaimantGuest:
		return true
	default:
		return false
	}
}

func NewClaimantKind(s string) (ClaimantKind, error) {
	kind := ClaimantKind(s)
	if !kind.IsValid() {
		return "", ErrInvalidClaimantKind
	}
	return kind, nil
}
