package response

import "event-coupon-admin/internal/usecase/commands"

type SyncResultResponse struct {
	LumaEventID     string   `json:"luma_event_id"`
	GuestsSynced    int32    `json:"guests_synced"`
	GuestsAdded     int32    `json:"guests_added"`
	GuestsUpdated   int32    `json:"guests_updated"`
	CouponsAssigned int32    `json:"coupons_assigned"`
	Errors          []string `json:"errors"`
}

func FromSyncResult(result *commands.SyncResult) *SyncResultResponse {
	resp := &SyncResultResponse{
		LumaEventID:     result.LumaEventID,
		GuestsSynced:    result.GuestsSynced,
		GuestsAdded:     result.GuestsAdded,
		GuestsUpdated:   result.GuestsUpdated,
		CouponsAssigned: result.CouponsAssigned,
		Errors:          result.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	return resp
}
