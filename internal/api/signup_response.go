package api

import "time"

// swagger:model api.SignupResponse
type SignupResponse struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice1"`
	CreatedAt time.Time `json:"created_at"`
}
