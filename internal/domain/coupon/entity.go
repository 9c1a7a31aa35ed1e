package coupon

import (
	"time"

	"event-coupon-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponAlreadyUsed = errs.New("coupon code is already used")
	ErrCouponNotUsed     = errs.New("coupon code is not used")
)

// CouponCode is a single-use code from the imported pool. Once marked
// used it stays bound to its claimant until explicitly released.
type CouponCode struct {
	id         uuid.UUID
	code       Code
	isUsed     bool
	usedAt     *time.Time
	usedByKind *ClaimantKind
	usedByRef  *string
	createdAt  time.Time
}

func NewCouponCode(code Code) *CouponCode {
	return &CouponCode{
		id:   uuid.New(),
		code: code,
	}
}

func (c *CouponCode) MarkUsed(kind ClaimantKind, ref string, at time.Time) error {
	if c.isUsed {
		return ErrCouponAlreadyUsed
	}
	c.isUsed = true
	c.usedAt = &at
	c.usedByKind = &kind
	c.usedByRef = &ref
	return nil
}

func (c *CouponCode) Release() error {
	if !c.isUsed {
		return ErrCouponNotUsed
	}
	c.isUsed = false
	c.usedAt = nil
	c.usedByKind = nil
	c.usedByRef = nil
	return nil
}

func (c *CouponCode) ID() uuid.UUID             { return c.id }
func (c *CouponCode) Code() Code                { return c.code }
func (c *CouponCode) IsUsed() bool              { return c.isUsed }
func (c *CouponCode) UsedAt() *time.Time        { return c.usedAt }
func (c *CouponCode) UsedByKind() *ClaimantKind { return c.usedByKind }
func (c *CouponCode) UsedByRef() *string        { return c.usedByRef }
func (c *CouponCode) CreatedAt() time.Time      { return c.createdAt }
