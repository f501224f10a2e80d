package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `form:"username" validate:"required" example:"alice1"`
	Password string `form:"password" validate:"required" example:"Str0ng!Pass"`
}
