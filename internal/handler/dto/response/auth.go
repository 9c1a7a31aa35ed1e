package response

import "event-coupon-admin/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Admin       *queries.AuthorizedAdminView `json:"admin"`
}

type RegisterAdminResponse struct {
	Admin      *queries.AuthorizedAdminView `json:"admin"`
	FirstAdmin bool                         `json:"first_admin"`
}
