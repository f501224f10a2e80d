package api

// CourseRequest carries raw course fields. Price and Published arrive as
// strings so the sanitizer can trim them before they are parsed.
// swagger:model api.CourseRequest
type CourseRequest struct {
	Title       string `form:"title" validate:"required" example:"Intro to Systems Design"`
	Description string `form:"description" validate:"required" example:"A practical walk through the design of real backend systems."`
	Price       string `form:"price" validate:"required" example:"4999"`
	ImageLink   string `form:"image_link" validate:"required" example:"https://x.com/a.png"`
	Published   string `form:"published" validate:"required" example:"true"`
}
