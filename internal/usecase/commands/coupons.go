package commands

import (
	"context"
	"fmt"

	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errs.New("coupon code not found")
	ErrCouponInUse         = errs.New("coupon code already used")
	ErrDuplicateCouponCode = errs.New("coupon code already exists")
)

type BulkImportResult struct {
	Imported   int32
	Duplicates []string
	Invalid    []string
}

type CouponCommands interface {
	Create(ctx context.Context, code string) (uuid.UUID, error)
	BulkImport(ctx context.Context, text string) (*BulkImportResult, error)
	UpdateCode(ctx context.Context, couponCodeID uuid.UUID, code string) error
	Delete(ctx context.Context, couponCodeID uuid.UUID) error
}

type couponCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCouponCommands(uow shared.UnitOfWork) CouponCommands {
	return &couponCommandsImpl{uow: uow}
}

func (c *couponCommandsImpl) Create(ctx context.Context, code string) (uuid.UUID, error) {
	parsed, err := coupon.NewCode(code)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Coupons().Insert(ctx, parsed)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCouponCode)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// BulkImport inserts every valid line in one transaction. Duplicates
// and malformed lines are reported back instead of failing the batch.
func (c *couponCommandsImpl) BulkImport(ctx context.Context, text string) (*BulkImportResult, error) {
	codes, invalidLines := coupon.ParseBulk(text)

	result := &BulkImportResult{}
	for _, line := range invalidLines {
		result.Invalid = append(result.Invalid, fmt.Sprintf("line %d: %s", line.LineNo, line.Text))
	}

	if len(codes) == 0 {
		return result, nil
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, code := range codes {
			if _, err := tx.Coupons().Insert(ctx, code); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					result.Duplicates = append(result.Duplicates, code.String())
					continue
				}
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *couponCommandsImpl) UpdateCode(ctx context.Context, couponCodeID uuid.UUID, code string) error {
	parsed, err := coupon.NewCode(code)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.requireUnused(ctx, tx, couponCodeID); err != nil {
			return err
		}

		if err := tx.Coupons().UpdateCode(ctx, couponCodeID, parsed); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCouponCode)
			}
			return err
		}
		return nil
	})
}

func (c *couponCommandsImpl) Delete(ctx context.Context, couponCodeID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.requireUnused(ctx, tx, couponCodeID); err != nil {
			return err
		}
		return tx.Coupons().Delete(ctx, couponCodeID)
	})
}

// Used codes are immutable: they document who received them.
func (c *couponCommandsImpl) requireUnused(ctx context.Context, tx shared.Tx, couponCodeID uuid.UUID) error {
	snapshot, err := tx.Reads().CouponByID(ctx, couponCodeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCouponNotFound)
		}
		return err
	}
	if snapshot.IsUsed {
		return ErrCouponInUse
	}
	return nil
}
