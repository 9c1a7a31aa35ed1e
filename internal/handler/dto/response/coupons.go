package response

import (
	"event-coupon-admin/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCouponResponse struct {
	ID uuid.UUID `json:"id"`
}

type BulkImportResponse struct {
	Imported   int32    `json:"imported"`
	Duplicates []string `json:"duplicates"`
	Invalid    []string `json:"invalid"`
}

func FromBulkImportResult(result *commands.BulkImportResult) *BulkImportResponse {
	resp := &BulkImportResponse{
		Imported:   result.Imported,
		Duplicates: result.Duplicates,
		Invalid:    result.Invalid,
	}
	if resp.Duplicates == nil {
		resp.Duplicates = []string{}
	}
	if resp.Invalid == nil {
		resp.Invalid = []string{}
	}
	return resp
}

type AssignCouponResponse struct {
	CouponCodeID uuid.UUID `json:"coupon_code_id"`
	CouponCode   string    `json:"coupon_code"`
}
