//go:build unit || e2e

package builder

import (
	"time"

	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponCodeBuilder struct {
	Code string
}

func NewCouponCodeBuilder() *CouponCodeBuilder {
	return &CouponCodeBuilder{
		Code: "CURSOR-TORONTO-001",
	}
}

func (b *CouponCodeBuilder) With(mutate func(*CouponCodeBuilder)) *CouponCodeBuilder {
	mutate(b)
	return b
}

func (b *CouponCodeBuilder) BuildDomain() (*coupon.CouponCode, error) {
	code, err := coupon.NewCode(b.Code)
	if err != nil {
		return nil, err
	}

	return coupon.NewCouponCode(code), nil
}

func (b *CouponCodeBuilder) BuildReadModel() *queries.CouponCodeView {
	return &queries.CouponCodeView{
		ID:        uuid.New(),
		Code:      b.Code,
		CreatedAt: time.Now(),
	}
}

func (b *CouponCodeBuilder) WithCode(code string) *CouponCodeBuilder {
	b.Code = code
	return b
}
