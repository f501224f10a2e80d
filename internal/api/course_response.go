package api

import (
	"time"

	"course-market/internal/model"
)

// swagger:model api.CourseResponse
type CourseResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Intro to Systems Design"`
	Description string    `json:"description"`
	Price       int       `json:"price" example:"4999"`
	ImageLink   string    `json:"image_link" example:"https://x.com/a.png"`
	Published   bool      `json:"published" example:"true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// swagger:model api.CoursesResponse
type CoursesResponse struct {
	Courses []CourseResponse `json:"courses"`
}

func NewCourseResponse(c model.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		ImageLink:   c.ImageLink,
		Published:   c.Published,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCoursesResponse(courses []model.Course) CoursesResponse {
	resp := CoursesResponse{Courses: make([]CourseResponse, 0, len(courses))}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, NewCourseResponse(c))
	}
	return resp
}
