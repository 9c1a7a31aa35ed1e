package request

type SyncGuestsRequest struct {
	// LumaEventID overrides the event configured in settings.
	LumaEventID *string `json:"lumaEventId" binding:"omitempty,max=100"`
}
