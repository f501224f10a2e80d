package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Username string `form:"username" validate:"required" example:"alice1"`
	Password string `form:"password" validate:"required" example:"Str0ng!Pass"`
}
