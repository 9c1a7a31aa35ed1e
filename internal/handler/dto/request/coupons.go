package request

type CreateCouponRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

type BulkImportCouponsRequest struct {
	// Codes is newline-separated text pasted from a spreadsheet column.
	Codes string `json:"codes" binding:"required"`
}

type UpdateCouponRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}
