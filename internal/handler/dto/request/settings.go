package request

import "event-coupon-admin/internal/usecase/shared"

// UpdateSettingsRequest patches only the fields present in the body.
type UpdateSettingsRequest struct {
	CityName     *string `json:"cityName" binding:"omitempty,max=200"`
	Timezone     *string `json:"timezone" binding:"omitempty,max=100"`
	LumaEventID  *string `json:"lumaEventId" binding:"omitempty,max=100"`
	LumaAPIKey   *string `json:"lumaApiKey"`
	ResendAPIKey *string `json:"resendApiKey"`
}

func (r *UpdateSettingsRequest) ToPatch() shared.SettingsPatch {
	return shared.SettingsPatch{
		CityName:     r.CityName,
		Timezone:     r.Timezone,
		LumaEventID:  r.LumaEventID,
		LumaAPIKey:   r.LumaAPIKey,
		ResendAPIKey: r.ResendAPIKey,
	}
}
