package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterAdminRequest struct {
	Name               string `json:"name" binding:"required,max=200"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	RegistrationSecret string `json:"registrationSecret" binding:"required"`
}
